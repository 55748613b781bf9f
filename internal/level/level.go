package level

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidLevelName = errors.New("invalid level name")
	ErrInvalidLevelCode = errors.New("invalid level code")
)

// Level is a Bunyan severity code.
type Level uint8

const (
	Trace Level = 10
	Debug Level = 20
	Info  Level = 30
	Warn  Level = 40
	Error Level = 50
	Fatal Level = 60
)

// Named lists the named levels in ascending order.
var Named = []Level{Trace, Debug, Info, Warn, Error, Fatal}

// Custom returns the level for an arbitrary code.
func Custom(code uint8) Level {
	return Level(code)
}

// Parse maps a case-insensitive level name to its level.
func Parse(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	case "fatal":
		return Fatal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevelName, name)
}

// FromCode decodes the numeric code found in a record.
func FromCode(code int64) (Level, error) {
	if code < 0 || code > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevelCode, code)
	}
	return Level(code), nil
}

// Code returns the numeric rank.
func (l Level) Code() uint8 {
	return uint8(l)
}

// IsNamed reports whether l is one of the six named levels.
func (l Level) IsNamed() bool {
	switch l {
	case Trace, Debug, Info, Warn, Error, Fatal:
		return true
	}
	return false
}

// Compare orders levels by numeric code.
func Compare(a, b Level) int {
	return cmp.Compare(a, b)
}

// Less reports whether l ranks below other.
func (l Level) Less(other Level) bool {
	return Compare(l, other) < 0
}

// Token is the fixed-width display form. Info and Warn carry a leading
// space so every named token is five columns wide.
func (l Level) Token() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return " INFO"
	case Warn:
		return " WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	}
	return "LVL" + strconv.Itoa(int(l))
}

// String returns the lowercase name accepted by Parse, or LVL{n}.
func (l Level) String() string {
	if l.IsNamed() {
		return strings.ToLower(strings.TrimSpace(l.Token()))
	}
	return l.Token()
}
