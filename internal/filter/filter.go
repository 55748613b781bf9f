// Package filter holds the record predicates applied before formatting.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/bunyan/internal/level"
	"github.com/five82/bunyan/internal/record"
)

var ErrInvalidTime = errors.New("invalid time")

// Filter selects records by minimum level and time window. Zero values
// disable the corresponding check.
type Filter struct {
	MinLevel *level.Level
	Since    time.Time
	Until    time.Time
}

// Active reports whether any predicate is set.
func (f Filter) Active() bool {
	return f.MinLevel != nil || !f.Since.IsZero() || !f.Until.IsZero()
}

// Match reports whether rec passes every configured predicate.
func (f Filter) Match(rec record.Record) bool {
	if f.MinLevel != nil && rec.Level.Less(*f.MinLevel) {
		return false
	}
	if !f.Since.IsZero() && rec.Time.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && rec.Time.After(f.Until) {
		return false
	}
	return true
}

// WithMinLevel returns a copy of f with the given minimum level.
func (f Filter) WithMinLevel(l level.Level) Filter {
	f.MinLevel = &l
	return f
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime accepts an RFC 3339 timestamp, a local date or date-time, or a
// duration such as "15m" meaning that long before now.
func ParseTime(s string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidTime)
	}
	if d, err := time.ParseDuration(trimmed); err == nil {
		if d < 0 {
			return time.Time{}, fmt.Errorf("%w: negative duration %q", ErrInvalidTime, s)
		}
		return now.Add(-d), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}
