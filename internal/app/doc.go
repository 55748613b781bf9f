// Package app drives the bunyan pipeline.
//
// # Overview
//
// This package is the caller of the formatter. It owns everything the
// formatter deliberately does not: reading input, decoding, filtering,
// line terminators and flushing.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ For each input (stdin when none given)
//	└──────┬───────┘
//	       │
//	       ├─────> logtail.NewScanner / logtail.Tail  Read lines
//	       ├─────> record.Decode                      Structured or passthrough
//	       ├─────> filter.Filter.Match                Level and time window
//	       ├─────> format.Formatter.Format            Render into style.Writer
//	       └─────> "\n" + Flush                       One flush per line
//
// Lines that do not decode are written unchanged (or dropped with Strict).
// Filters never apply to them.
//
// # Error Handling
//
// A write error ends the run immediately and is returned as-is; the
// current line may be partially written. Read errors are wrapped with the
// input name. Cancellation of the context stops the run between lines and
// returns the context error.
//
// Diagnostics go to the configured logger on stderr and never to the
// output stream.
package app
