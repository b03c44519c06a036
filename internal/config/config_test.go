// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.UI.Highlight {
		t.Error("Expected highlighting on by default")
	}
	if cfg.UI.TabWidth != 2 {
		t.Errorf("Expected default tab width 2, got %d", cfg.UI.TabWidth)
	}
	if cfg.UI.SeparatorGap != 2 {
		t.Errorf("Expected default separator gap 2, got %d", cfg.UI.SeparatorGap)
	}
	if !cfg.Watch.Enabled {
		t.Error("Expected watch enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config must validate: %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.TabWidth = 0
	cfg.UI.SeparatorGap = 99
	cfg.Watch.DebounceMs = 10

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation failure")
	}

	verrs, ok := err.(ValidateErrors)
	if !ok {
		t.Fatalf("Expected ValidateErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("Expected 3 violations, got %d: %v", len(verrs), verrs)
	}
	if !strings.Contains(err.Error(), "ui.tab_width") {
		t.Errorf("Error should name the field: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[ui]
highlight = false
tab_width = 4
separator_gap = 3
page_overlap = 2

[watch]
enabled = false
debounce_ms = 500
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.UI.Highlight {
		t.Error("Expected highlight disabled")
	}
	if cfg.UI.TabWidth != 4 {
		t.Errorf("Expected tab width 4, got %d", cfg.UI.TabWidth)
	}
	if cfg.Watch.Enabled {
		t.Error("Expected watch disabled")
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("Expected debounce 500, got %d", cfg.Watch.DebounceMs)
	}
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntab_width = 8\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.UI.TabWidth != 8 {
		t.Errorf("Expected tab width 8, got %d", cfg.UI.TabWidth)
	}
	// Unspecified sections keep their defaults.
	if cfg.UI.SeparatorGap != 2 {
		t.Errorf("Expected default separator gap, got %d", cfg.UI.SeparatorGap)
	}
	if !cfg.Watch.Enabled {
		t.Error("Expected watch to default on")
	}
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntab_width = 99\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("Expected validation error for tab_width 99")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DIFFWIN_HIGHLIGHT", "false")
	t.Setenv("DIFFWIN_TAB_WIDTH", "6")
	t.Setenv("DIFFWIN_WATCH", "0")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.Highlight {
		t.Error("Expected DIFFWIN_HIGHLIGHT=false to apply")
	}
	if cfg.UI.TabWidth != 6 {
		t.Errorf("Expected DIFFWIN_TAB_WIDTH=6 to apply, got %d", cfg.UI.TabWidth)
	}
	if cfg.Watch.Enabled {
		t.Error("Expected DIFFWIN_WATCH=0 to apply")
	}
}

func TestApplyEnvOverrides_IgnoresGarbage(t *testing.T) {
	t.Setenv("DIFFWIN_TAB_WIDTH", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.TabWidth != 2 {
		t.Errorf("Garbage env value should be ignored, got %d", cfg.UI.TabWidth)
	}
}

// TestConfig_ConcurrentAccess verifies Global() and SetGlobal() are safe
// to call concurrently. Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()

		go func() {
			defer wg.Done()
			if cfg := Global(); cfg == nil {
				t.Error("Global() returned nil")
			}
		}()
	}

	wg.Wait()
}
