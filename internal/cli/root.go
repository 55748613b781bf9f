// Package cli defines the bunyan command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/five82/bunyan/internal/app"
	"github.com/five82/bunyan/internal/config"
	"github.com/five82/bunyan/internal/filter"
	"github.com/five82/bunyan/internal/level"
	"github.com/five82/bunyan/internal/pager"
	"github.com/five82/bunyan/internal/prefs"
)

type flags struct {
	configPath string
	color      string
	noColor    bool
	level      string
	since      string
	until      string
	tail       bool
	lines      int
	strict     bool
	pager      bool
	verbose    bool
}

// runPager is replaced in tests; the real pager needs a terminal.
var runPager = pager.Run

// NewRootCommand builds the bunyan command.
func NewRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "bunyan [files...]",
		Short: "Pretty-print Bunyan JSON logs",
		Long: `bunyan reads Bunyan JSON log records from files or stdin and prints each
as one readable line. Lines that are not records pass through unchanged.

Examples:
  node server.js | bunyan
  bunyan -l warn app.log
  bunyan --since 15m --tail -n 500 app.log
  bunyan --pager app.log`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	fs.StringVar(&f.color, "color", "", "colorize output: auto, always or never")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colors (same as --color never)")
	fs.StringVarP(&f.level, "level", "l", "", "only show records at or above this level")
	fs.StringVar(&f.since, "since", "", "only show records at or after this time (RFC 3339, date, or duration ago)")
	fs.StringVar(&f.until, "until", "", "only show records at or before this time")
	fs.BoolVar(&f.tail, "tail", false, "only show the last lines of each input")
	fs.IntVarP(&f.lines, "lines", "n", 0, "number of lines for --tail (implies --tail)")
	fs.BoolVar(&f.strict, "strict", false, "drop lines that are not Bunyan records")
	fs.BoolVarP(&f.pager, "pager", "p", false, "browse the output interactively")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")

	return cmd
}

// Execute runs the root command with os arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func run(cmd *cobra.Command, args []string, f flags) error {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	colorMode := cfg.Color
	if f.color != "" {
		if colorMode, err = config.ParseColorMode(f.color); err != nil {
			return err
		}
	}
	if f.noColor {
		colorMode = config.ColorNever
	}

	flt, err := buildFilter(cfg, f, time.Now())
	if err != nil {
		return err
	}

	tail := 0
	if f.tail || f.lines > 0 {
		tail = cfg.TailLines
		if f.lines > 0 {
			tail = f.lines
		}
	}

	out := cmd.OutOrStdout()
	color := colorMode.Enabled(out)
	logger.Debug("starting", "inputs", args, "color", color, "tail", tail, "filter", flt.Active())

	if f.pager {
		lines, err := app.ReadLines(cmd.InOrStdin(), args, tail)
		if err != nil {
			return err
		}
		return runPager(cmd.Context(), lines, pager.Options{
			Filter:    flt,
			Color:     colorMode != config.ColorNever,
			PrefsPath: prefs.DefaultPath(),
		})
	}

	return app.Run(cmd.Context(), cmd.InOrStdin(), out, app.Options{
		Inputs:     args,
		Filter:     flt,
		Color:      color,
		BufferSize: cfg.BufferSize,
		Tail:       tail,
		Strict:     f.strict,
		Logger:     logger,
	})
}

func buildFilter(cfg config.Config, f flags, now time.Time) (filter.Filter, error) {
	var flt filter.Filter

	minLevel, err := cfg.MinLevel()
	if err != nil {
		return flt, err
	}
	if f.level != "" {
		l, err := level.Parse(f.level)
		if err != nil {
			return flt, fmt.Errorf("--level: %w", err)
		}
		minLevel = &l
	}
	flt.MinLevel = minLevel

	if f.since != "" {
		if flt.Since, err = filter.ParseTime(f.since, now); err != nil {
			return flt, fmt.Errorf("--since: %w", err)
		}
	}
	if f.until != "" {
		if flt.Until, err = filter.ParseTime(f.until, now); err != nil {
			return flt, fmt.Errorf("--until: %w", err)
		}
	}
	if !flt.Since.IsZero() && !flt.Until.IsZero() && flt.Until.Before(flt.Since) {
		return flt, fmt.Errorf("--until %s is before --since %s", f.until, f.since)
	}
	return flt, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "bunyan",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
