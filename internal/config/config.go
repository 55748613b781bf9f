package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/bunyan/internal/level"
)

// Config holds user defaults for the bunyan command. Flags override it.
type Config struct {
	Color      ColorMode
	Level      string
	BufferSize int
	TailLines  int
}

const (
	defaultConfigPath = "~/.config/bunyan/config.toml"
	defaultBufferSize = 1024 * 1024
	defaultTailLines  = 100
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Color:      ColorAuto,
		BufferSize: defaultBufferSize,
		TailLines:  defaultTailLines,
	}
}

// DefaultPath returns the default config file location, unexpanded.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Color      string `toml:"color" yaml:"color"`
		Level      string `toml:"level" yaml:"level"`
		BufferSize int    `toml:"buffer_size" yaml:"buffer_size"`
		TailLines  int    `toml:"tail_lines" yaml:"tail_lines"`
	}
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if color := strings.TrimSpace(raw.Color); color != "" {
		mode, err := ParseColorMode(color)
		if err != nil {
			return Config{}, fmt.Errorf("config color: %w", err)
		}
		cfg.Color = mode
	}

	cfg.Level = strings.TrimSpace(raw.Level)
	if cfg.Level != "" {
		if _, err := level.Parse(cfg.Level); err != nil {
			return Config{}, fmt.Errorf("config level: %w", err)
		}
	}

	if raw.BufferSize > 0 {
		cfg.BufferSize = raw.BufferSize
	}
	if raw.TailLines > 0 {
		cfg.TailLines = raw.TailLines
	}

	return cfg, nil
}

// MinLevel returns the configured minimum level, if any.
func (c Config) MinLevel() (*level.Level, error) {
	if strings.TrimSpace(c.Level) == "" {
		return nil, nil
	}
	l, err := level.Parse(c.Level)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
