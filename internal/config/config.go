// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for diffwin.
//
// Configuration lives in TOML with sensible defaults, environment
// variable overrides, and validation.
//
// Configuration file location:
//   - ~/.diffwin/config.toml
//   - Built-in defaults otherwise
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/diffwin/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete diffwin configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Watch configuration (live reload of the compared files)
	Watch WatchConfig `toml:"watch"`
}

// UIConfig contains display configuration for the diff view and menus.
type UIConfig struct {
	// Highlight enables matched-line highlighting when the diff view opens
	Highlight bool `toml:"highlight"`
	// TabWidth is the number of spaces a tab expands to (1-8)
	TabWidth int `toml:"tab_width"`
	// SeparatorGap is the half-gap in columns on each side of the pane separator (1-8)
	SeparatorGap int `toml:"separator_gap"`
	// PageOverlap is how many rows a page jump keeps visible from the previous page (0-10)
	PageOverlap int `toml:"page_overlap"`
}

// WatchConfig contains live-reload configuration.
type WatchConfig struct {
	// Enabled turns on file watching while the diff view is open
	Enabled bool `toml:"enabled"`
	// DebounceMs is the quiet period before a change triggers a reload (50-5000)
	DebounceMs int `toml:"debounce_ms"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			Highlight:    true,
			TabWidth:     2,
			SeparatorGap: 2,
			PageOverlap:  4,
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMs: 250,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the diffwin configuration directory (~/.diffwin).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".diffwin"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the configuration, falling back to defaults when no config
// file exists. Environment overrides apply on top of whatever was read,
// and the result is always validated.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath reads configuration from an explicit path (used by tests).
// The file must exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default TOML path atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# diffwin configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// ~/.diffwin is created 0700 on first save
	if err := util.AtomicWriteFileWithDir(path, buf.Bytes(), 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies DIFFWIN_* environment variables on top of the
// loaded values. Unparseable values are ignored rather than fatal.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("DIFFWIN_HIGHLIGHT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.Highlight = b
		}
	}
	if v := os.Getenv("DIFFWIN_TAB_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.TabWidth = n
		}
	}
	if v := os.Getenv("DIFFWIN_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Watch.Enabled = b
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidateErrors aggregates all validation failures.
type ValidateErrors []ValidationError

// Error implements the error interface.
func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks all fields and returns every violation at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.UI.TabWidth < 1 || c.UI.TabWidth > 8 {
		errs = append(errs, ValidationError{
			Field: "ui.tab_width", Value: c.UI.TabWidth,
			Message: "must be between 1 and 8",
		})
	}
	if c.UI.SeparatorGap < 1 || c.UI.SeparatorGap > 8 {
		errs = append(errs, ValidationError{
			Field: "ui.separator_gap", Value: c.UI.SeparatorGap,
			Message: "must be between 1 and 8",
		})
	}
	if c.UI.PageOverlap < 0 || c.UI.PageOverlap > 10 {
		errs = append(errs, ValidationError{
			Field: "ui.page_overlap", Value: c.UI.PageOverlap,
			Message: "must be between 0 and 10",
		})
	}
	if c.Watch.DebounceMs < 50 || c.Watch.DebounceMs > 5000 {
		errs = append(errs, ValidationError{
			Field: "watch.debounce_ms", Value: c.Watch.DebounceMs,
			Message: "must be between 50 and 5000",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// GLOBAL SINGLETON
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
// Load failures fall back to defaults with a warning on stderr.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal replaces the global configuration (used by tests).
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	globalConfig = cfg
	globalConfigMu.Unlock()
}
