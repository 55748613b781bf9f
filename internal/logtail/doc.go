// Package logtail reads log input line by line, optionally keeping only the
// last N lines.
//
// # Ring Buffer Algorithm
//
// Tail keeps a circular buffer of n lines:
//
//	1. Allocate ring buffer of size n
//	2. For each line:
//	   - Store line at current index
//	   - Increment index (wrapping at n)
//	   - Track total lines seen
//	3. If total < n:
//	   - Return first 'count' entries from buffer
//	4. If total >= n:
//	   - Return buffer starting from current index (oldest line)
//
// Memory is O(n) regardless of input size and the input is read once.
//
// # Line Size
//
// Scanners created here accept lines up to MaxLineSize. A longer line
// fails the read with bufio.ErrTooLong rather than being split, since a
// split record would no longer decode.
package logtail
