package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var ErrInvalidColorMode = errors.New("invalid color mode")

// ColorMode decides whether output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always or never in any case.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColorMode, s)
}

// Enabled resolves the mode for out. Auto styles only when out is a
// terminal with color support; NO_COLOR and CLICOLOR_FORCE are honored.
func (m ColorMode) Enabled(out io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return termenv.NewOutput(out).EnvColorProfile() != termenv.Ascii
}
