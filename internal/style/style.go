// Package style wraps output text in ANSI SGR sequences.
package style

// Style is a terminal presentation attribute.
type Style int

const (
	None Style = iota
	Bold
	Inverse
	White
	Cyan
	Magenta
	Red
	Yellow
)

// Codes returns the SGR sequences that turn the style on and off.
// See https://en.wikipedia.org/wiki/ANSI_escape_code#SGR_(Select_Graphic_Rendition)_parameters
func (s Style) Codes() (begin, end string) {
	switch s {
	case Bold:
		return "\x1b[1m", "\x1b[22m"
	case Inverse:
		return "\x1b[7m", "\x1b[27m"
	case White:
		return "\x1b[37m", "\x1b[39m"
	case Cyan:
		return "\x1b[36m", "\x1b[39m"
	case Magenta:
		return "\x1b[35m", "\x1b[39m"
	case Red:
		return "\x1b[31m", "\x1b[39m"
	case Yellow:
		return "\x1b[33m", "\x1b[39m"
	default:
		return "", ""
	}
}
