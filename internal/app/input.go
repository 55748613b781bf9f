package app

import (
	"fmt"
	"io"

	"github.com/five82/bunyan/internal/logtail"
)

// ReadLines collects every line of the inputs, or the last tail lines of
// each when tail > 0. It backs modes that need the whole input up front.
func ReadLines(stdin io.Reader, inputs []string, tail int) ([]string, error) {
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}
	var all []string
	for _, name := range inputs {
		var (
			lines []string
			err   error
		)
		if name == stdinName {
			lines, err = logtail.Tail(stdin, tail)
		} else {
			lines, err = logtail.Read(name, tail)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		all = append(all, lines...)
	}
	return all, nil
}
