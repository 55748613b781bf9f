package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/bunyan/internal/level"
	"github.com/five82/bunyan/internal/record"
	"github.com/five82/bunyan/internal/style"
)

const (
	// maxExtraLen is the longest rendered value kept inline; longer values
	// go to the details section.
	maxExtraLen = 50

	hostnamePlaceholder = "<no-hostname>"
	timeLayout          = "2006-01-02T15:04:05.000-07:00"

	extrasSep    = ", "
	detailIndent = "\n    "
	detailsSep   = "\n    --"
	detailKeySep = ": "
	extrasOpen   = " ("
	extrasClose  = ")"
	extraAssign  = "="
	extraQuote   = `"`
)

// Formatter renders records. The zero value is ready to use.
type Formatter struct {
	buf bytes.Buffer
}

// New returns a Formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format writes rec as one line, without the trailing newline.
func (f *Formatter) Format(w *style.Writer, rec record.Record) error {
	hostname := rec.Hostname
	if hostname == "" {
		hostname = hostnamePlaceholder
	}

	if err := w.Write("["); err != nil {
		return err
	}
	if err := w.WriteStyled(rec.Time.Format(timeLayout), style.White); err != nil {
		return err
	}
	if err := w.Write("] "); err != nil {
		return err
	}
	if err := w.WriteStyled(rec.Level.Token(), LevelStyle(rec.Level)); err != nil {
		return err
	}
	if err := w.Write(": "); err != nil {
		return err
	}
	if err := w.Write(rec.Name); err != nil {
		return err
	}
	if err := w.Write("/"); err != nil {
		return err
	}
	if err := w.Write(strconv.FormatUint(uint64(rec.PID), 10)); err != nil {
		return err
	}
	if err := w.Write(" on "); err != nil {
		return err
	}
	if err := w.Write(hostname); err != nil {
		return err
	}
	if err := w.Write(": "); err != nil {
		return err
	}
	if err := w.WriteStyled(rec.Message, style.Cyan); err != nil {
		return err
	}
	return f.writeLeftover(w, rec)
}

// LevelStyle is the style used for a level's token.
func LevelStyle(l level.Level) style.Style {
	switch l {
	case level.Trace:
		return style.White
	case level.Debug:
		return style.Yellow
	case level.Info:
		return style.Cyan
	case level.Warn:
		return style.Magenta
	case level.Error:
		return style.Red
	case level.Fatal:
		return style.Inverse
	default:
		return style.None
	}
}

type field struct {
	key    string
	value  string
	quoted bool
}

// writeLeftover renders the non-header fields. Fields are partitioned in a
// single pass into one slice used as a deque: extras are pushed at the
// front end and details at the back end. Reading each end backwards gives
// extras in reverse key order and details in key order.
func (f *Formatter) writeLeftover(w *style.Writer, rec record.Record) error {
	keys := rec.Keys()
	items := make([]field, len(keys))
	front, back := 0, len(items)

	for _, key := range keys {
		value, quoted, err := f.renderValue(rec.Fields[key])
		if err != nil {
			return fmt.Errorf("render field %q: %w", key, err)
		}
		if len(value) > maxExtraLen || strings.Contains(value, "\n") {
			back--
			items[back] = field{key: key, value: value}
			continue
		}
		items[front] = field{key: key, value: value, quoted: quoted}
		front++
	}

	if extras := items[:front]; len(extras) > 0 {
		if err := w.Write(extrasOpen); err != nil {
			return err
		}
		if err := writeJoined(w, backward(extras), extrasSep, func(fd field) error {
			return writeExtra(w, fd)
		}); err != nil {
			return err
		}
		if err := w.Write(extrasClose); err != nil {
			return err
		}
	}

	return writeJoined(w, backward(items[back:]), detailsSep, func(fd field) error {
		return writeDetail(w, fd)
	})
}

func writeExtra(w *style.Writer, fd field) error {
	if err := w.WriteStyled(fd.key, style.Bold); err != nil {
		return err
	}
	if err := w.Write(extraAssign); err != nil {
		return err
	}
	if !fd.quoted {
		return w.Write(fd.value)
	}
	if err := w.Write(extraQuote); err != nil {
		return err
	}
	if err := w.Write(fd.value); err != nil {
		return err
	}
	return w.Write(extraQuote)
}

func writeDetail(w *style.Writer, fd field) error {
	if err := w.Write(detailIndent); err != nil {
		return err
	}
	if err := w.WriteStyled(fd.key, style.Bold); err != nil {
		return err
	}
	if err := w.Write(detailKeySep); err != nil {
		return err
	}
	return writeJoined(w, lines(fd.value), detailIndent, w.Write)
}

// renderValue returns the display text of a field value and whether it
// must be quoted when shown inline. Strings are shown raw and quoted when
// they are empty or contain a space on a single line. Everything else is
// pretty-printed JSON and never quoted.
func (f *Formatter) renderValue(v any) (string, bool, error) {
	if s, ok := v.(string); ok {
		quoted := s == "" || (strings.Contains(s, " ") && !strings.Contains(s, "\n"))
		return s, quoted, nil
	}

	f.buf.Reset()
	enc := json.NewEncoder(&f.buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", false, err
	}
	return strings.TrimSuffix(f.buf.String(), "\n"), false, nil
}
