// Package prefs persists pager preferences between runs.
// Preferences are stored in ~/.config/bunyan/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/bunyan/internal/level"
)

// Prefs holds state the pager remembers.
type Prefs struct {
	// PagerLevel is the last minimum level chosen in the pager; empty
	// means all levels.
	PagerLevel string `toml:"pager_level"`
}

const defaultPrefsPath = "~/.config/bunyan/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Preferences are a
// convenience, so every failure degrades to the zero Prefs.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Prefs{}
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Prefs{}
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Prefs{}
	}
	p.PagerLevel = strings.TrimSpace(p.PagerLevel)
	if _, err := p.Level(); err != nil {
		p.PagerLevel = ""
	}
	return p
}

// Level returns the stored pager level, or nil for all levels.
func (p Prefs) Level() (*level.Level, error) {
	if p.PagerLevel == "" {
		return nil, nil
	}
	l, err := level.Parse(p.PagerLevel)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// WithLevel returns p storing l; nil stores all levels.
func (p Prefs) WithLevel(l *level.Level) Prefs {
	p.PagerLevel = ""
	if l != nil && l.IsNamed() {
		p.PagerLevel = l.String()
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
