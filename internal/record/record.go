// Package record decodes one Bunyan JSON log line.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/five82/bunyan/internal/level"
)

var (
	ErrNotObject    = errors.New("record is not a JSON object")
	ErrMissingField = errors.New("missing required field")
	ErrFieldType    = errors.New("unexpected field type")
)

// Header keys consumed into Record fields.
const (
	KeyVersion  = "v"
	KeyLevel    = "level"
	KeyName     = "name"
	KeyHostname = "hostname"
	KeyPID      = "pid"
	KeyTime     = "time"
	KeyMessage  = "msg"
)

// Record is a decoded log entry. Fields holds every non-header key; numbers
// are json.Number so they render exactly as they appeared in the input.
type Record struct {
	Version  uint8
	Level    level.Level
	Name     string
	Hostname string
	PID      uint32
	Time     time.Time
	Message  string
	Fields   map[string]any
}

// Keys returns the field names in ascending order.
func (r Record) Keys() []string {
	return slices.Sorted(maps.Keys(r.Fields))
}

// Decode parses line as a Bunyan record. Any failure means the line should
// be treated as plain text.
func Decode(line []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	if fields == nil {
		return Record{}, ErrNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Record{}, errors.New("decode record: trailing data after object")
	}

	var (
		rec Record
		err error
	)
	if rec.Version, err = takeUint[uint8](fields, KeyVersion, 8); err != nil {
		return Record{}, err
	}
	code, err := takeInt(fields, KeyLevel)
	if err != nil {
		return Record{}, err
	}
	if rec.Level, err = level.FromCode(code); err != nil {
		return Record{}, err
	}
	if rec.Name, err = takeString(fields, KeyName); err != nil {
		return Record{}, err
	}
	if rec.Hostname, err = takeString(fields, KeyHostname); err != nil {
		return Record{}, err
	}
	if rec.PID, err = takeUint[uint32](fields, KeyPID, 32); err != nil {
		return Record{}, err
	}
	ts, err := takeString(fields, KeyTime)
	if err != nil {
		return Record{}, err
	}
	if rec.Time, err = time.Parse(time.RFC3339Nano, ts); err != nil {
		return Record{}, fmt.Errorf("%w: %s: %v", ErrFieldType, KeyTime, err)
	}
	if rec.Message, err = takeString(fields, KeyMessage); err != nil {
		return Record{}, err
	}

	rec.Fields = fields
	return rec, nil
}

func take(fields map[string]any, key string) (any, error) {
	v, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	delete(fields, key)
	return v, nil
}

func takeString(fields map[string]any, key string) (string, error) {
	v, err := take(fields, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrFieldType, key, v)
	}
	return s, nil
}

func takeNumber(fields map[string]any, key string) (json.Number, error) {
	v, err := take(fields, key)
	if err != nil {
		return "", err
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want number", ErrFieldType, key, v)
	}
	return n, nil
}

func takeInt(fields map[string]any, key string) (int64, error) {
	n, err := takeNumber(fields, key)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrFieldType, key, err)
	}
	return i, nil
}

func takeUint[T uint8 | uint32](fields map[string]any, key string, bits int) (T, error) {
	n, err := takeNumber(fields, key)
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(n.String(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrFieldType, key, err)
	}
	return T(u), nil
}
