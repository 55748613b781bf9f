package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/five82/bunyan/internal/filter"
	"github.com/five82/bunyan/internal/logtail"
)

const (
	stdinName         = "-"
	defaultBufferSize = 1024 * 1024
)

// Options configure a run.
type Options struct {
	Inputs     []string // file paths; empty or "-" reads stdin
	Filter     filter.Filter
	Color      bool
	BufferSize int  // output buffer bytes; zero uses 1 MiB
	Tail       int  // when > 0, only the last Tail lines of each input
	Strict     bool // drop lines that are not records
	Logger     *log.Logger
}

// Run formats every input to stdout until the inputs are exhausted, a write
// fails or ctx is cancelled.
func Run(ctx context.Context, stdin io.Reader, stdout io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	size := opts.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	proc := NewProcessor(bufio.NewWriterSize(stdout, size), opts.Color, opts.Filter, opts.Strict)

	inputs := opts.Inputs
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	for _, name := range inputs {
		before := proc.Stats()
		if err := runInput(ctx, proc, stdin, name, opts.Tail, logger); err != nil {
			return err
		}
		logger.Debug("input done", "input", name, "stats", proc.Stats().Sub(before))
	}
	return nil
}

func runInput(ctx context.Context, proc *Processor, stdin io.Reader, name string, tail int, logger *log.Logger) error {
	r := stdin
	if name != stdinName {
		file, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}
	logger.Debug("reading input", "input", name, "tail", tail)

	if tail > 0 {
		lines, err := logtail.Tail(r, tail)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for _, line := range lines {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := proc.Line(line); err != nil {
				return err
			}
		}
		return nil
	}

	return stream(ctx, proc, r, name)
}

// stream scans r on a separate goroutine so that a blocked read (an idle
// terminal or pipe) does not delay cancellation. Lines are still formatted
// one at a time on the calling goroutine.
func stream(ctx context.Context, proc *Processor, r io.Reader, name string) error {
	lines := make(chan string, 64)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := logtail.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("%s: read log: %w", name, err)
				}
				return nil
			}
			if err := proc.Line(line); err != nil {
				return err
			}
		}
	}
}
