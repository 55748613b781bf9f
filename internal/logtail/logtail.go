package logtail

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MaxLineSize bounds a single input line. Bunyan records with large
// serialized objects routinely exceed bufio's 64KiB default.
const MaxLineSize = 16 * 1024 * 1024

// NewScanner returns a line scanner sized for log records.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return scanner
}

// Tail returns the last n lines of r. When n <= 0 every line is returned.
func Tail(r io.Reader, n int) ([]string, error) {
	scanner := NewScanner(r)
	if n <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, n)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % n
		if count < n {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == n {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%n]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Read returns the last n lines of the file at path.
func Read(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()
	return Tail(file, n)
}
