// Package config loads the bunyan command's user defaults.
//
// # Overview
//
// Defaults live in a small optional file. Every setting can also be given
// as a command-line flag, and flags always win. A missing file is not an
// error: the command works out of the box without any configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bunyan/config.toml (default)
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # File Formats
//
// TOML is the default format. A path ending in .yaml or .yml is parsed as
// YAML with the same keys:
//
//	color = "auto"        # auto, always or never
//	level = "info"        # minimum level shown; empty shows everything
//	buffer_size = 1048576 # output buffer in bytes
//	tail_lines = 100      # lines shown by --tail without a count
//
// # Color Decisions
//
// ColorMode.Enabled resolves "auto" against the actual destination using
// termenv: pipes and files are never styled, terminals are, and the
// NO_COLOR and CLICOLOR_FORCE environment variables are respected.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML or YAML parsing errors
//   - Unknown color modes or level names
package config
