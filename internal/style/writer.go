package style

import "io"

type flusher interface {
	Flush() error
}

// Writer is an output sink that optionally styles text. Whether styling is
// enabled is fixed at construction.
type Writer struct {
	w       io.Writer
	enabled bool
}

// NewWriter wraps w. When enabled is false, WriteStyled behaves like Write.
func NewWriter(w io.Writer, enabled bool) *Writer {
	return &Writer{w: w, enabled: enabled}
}

// Enabled reports whether styled writes emit escape sequences.
func (w *Writer) Enabled() bool {
	return w.enabled
}

// Write emits text unchanged.
func (w *Writer) Write(text string) error {
	_, err := io.WriteString(w.w, text)
	return err
}

// WriteStyled emits text wrapped in the style's sequences.
func (w *Writer) WriteStyled(text string, s Style) error {
	if !w.enabled {
		return w.Write(text)
	}
	begin, end := s.Codes()
	if err := w.Write(begin); err != nil {
		return err
	}
	if err := w.Write(text); err != nil {
		return err
	}
	return w.Write(end)
}

// Flush flushes the destination when it buffers; otherwise it is a no-op.
func (w *Writer) Flush() error {
	if f, ok := w.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
