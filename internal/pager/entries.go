package pager

import (
	"bytes"

	"github.com/five82/bunyan/internal/filter"
	"github.com/five82/bunyan/internal/format"
	"github.com/five82/bunyan/internal/level"
	"github.com/five82/bunyan/internal/record"
	"github.com/five82/bunyan/internal/style"
)

type entry struct {
	record bool
	level  level.Level
	text   string
}

// buildEntries renders lines once. Records outside the time window of f
// are dropped here; its level is applied interactively instead.
func buildEntries(lines []string, f filter.Filter, color bool) ([]entry, error) {
	window := filter.Filter{Since: f.Since, Until: f.Until}
	formatter := format.New()

	var buf bytes.Buffer
	out := style.NewWriter(&buf, color)

	entries := make([]entry, 0, len(lines))
	for _, line := range lines {
		rec, err := record.Decode([]byte(line))
		if err != nil {
			entries = append(entries, entry{text: line})
			continue
		}
		if !window.Match(rec) {
			continue
		}
		buf.Reset()
		if err := formatter.Format(out, rec); err != nil {
			return nil, err
		}
		entries = append(entries, entry{record: true, level: rec.Level, text: buf.String()})
	}
	return entries, nil
}

// visible reports whether e is shown with the given minimum level.
func (e entry) visible(minLevel *level.Level) bool {
	return !e.record || minLevel == nil || !e.level.Less(*minLevel)
}

// nextLevel cycles all -> debug -> info -> warn -> error -> fatal -> all.
func nextLevel(current *level.Level) *level.Level {
	for _, l := range level.Named[1:] {
		if current == nil || current.Less(l) {
			return &l
		}
	}
	return nil
}
