package format

import (
	"iter"
	"strings"

	"github.com/five82/bunyan/internal/style"
)

// writeJoined calls write for each item, emitting sep between items.
func writeJoined[T any](w *style.Writer, items iter.Seq[T], sep string, write func(T) error) error {
	first := true
	for item := range items {
		if !first {
			if err := w.Write(sep); err != nil {
				return err
			}
		}
		first = false
		if err := write(item); err != nil {
			return err
		}
	}
	return nil
}

// backward yields the elements of s from last to first.
func backward[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// lines yields the lines of s without their terminators. A trailing
// newline does not produce an empty final line, and "\r\n" counts as one
// terminator.
func lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
