// Package format renders decoded Bunyan records as single terminal lines.
//
// A rendered record looks like
//
//	[2024-01-02T03:04:05.006+00:00]  INFO: svc/42 on box: started (user=bob, attempt=2)
//	    request: {
//	      "id": 7
//	    }
//	    --
//	    stack: Error: boom
//	    at main.js:1
//
// The header carries the record's fixed fields. Every other field is either
// an extra, shown inline in parentheses, or a detail, shown as an indented
// block below the header. A field is a detail when its rendered value is
// longer than 50 bytes or spans several lines. Fields are visited in key
// order; extras come out in reverse key order and details in key order.
//
// Fragments are written to the style.Writer as soon as they are produced;
// the line is never assembled in memory. The caller writes the trailing
// newline and flushes.
package format
