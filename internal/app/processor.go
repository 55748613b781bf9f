package app

import (
	"io"

	"github.com/five82/bunyan/internal/filter"
	"github.com/five82/bunyan/internal/format"
	"github.com/five82/bunyan/internal/record"
	"github.com/five82/bunyan/internal/style"
)

// Stats counts what happened to input lines.
type Stats struct {
	Records     int
	Passthrough int
	Filtered    int
	Dropped     int
}

// Sub returns s minus other.
func (s Stats) Sub(other Stats) Stats {
	return Stats{
		Records:     s.Records - other.Records,
		Passthrough: s.Passthrough - other.Passthrough,
		Filtered:    s.Filtered - other.Filtered,
		Dropped:     s.Dropped - other.Dropped,
	}
}

// Processor turns input lines into output lines. It is not safe for
// concurrent use.
type Processor struct {
	out       *style.Writer
	formatter *format.Formatter
	filter    filter.Filter
	strict    bool
	stats     Stats
}

// NewProcessor writes to w, styling when color is set. w is flushed after
// every line when it supports flushing.
func NewProcessor(w io.Writer, color bool, f filter.Filter, strict bool) *Processor {
	return &Processor{
		out:       style.NewWriter(w, color),
		formatter: format.New(),
		filter:    f,
		strict:    strict,
	}
}

// Stats returns the running counters.
func (p *Processor) Stats() Stats {
	return p.stats
}

// Line handles one input line.
func (p *Processor) Line(line string) error {
	rec, err := record.Decode([]byte(line))
	if err != nil {
		if p.strict {
			p.stats.Dropped++
			return nil
		}
		p.stats.Passthrough++
		return p.finish(p.out.Write(line))
	}

	if !p.filter.Match(rec) {
		p.stats.Filtered++
		return nil
	}
	p.stats.Records++
	return p.finish(p.formatter.Format(p.out, rec))
}

func (p *Processor) finish(err error) error {
	if err != nil {
		return err
	}
	if err := p.out.Write("\n"); err != nil {
		return err
	}
	return p.out.Flush()
}
