// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package internal provides integration tests for the complete diffwin
// pipeline.
//
// These tests verify end-to-end functionality including:
// - Loading and normalizing files from disk
// - Aligning two documents and computing statistics
// - Live reload through the file watcher
// - Configuration round-trips
package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/diffwin/internal/align"
	"github.com/jeranaias/diffwin/internal/config"
	"github.com/jeranaias/diffwin/internal/document"
)

// =============================================================================
// TEST UTILITIES
// =============================================================================

// createTempFile creates a file with the given content in a fresh temp
// directory and returns its path.
func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return path
}

// =============================================================================
// LOAD AND ALIGN PIPELINE
// =============================================================================

// TestIntegration_LoadAndAlign runs two files through the full
// load-normalize-align pipeline.
func TestIntegration_LoadAndAlign(t *testing.T) {
	left := createTempFile(t, "left.txt", "header\n\tindented\nshared\nremoved\n")
	right := createTempFile(t, "right.txt", "header\n  indented\nshared\nadded one\nadded two\n")

	leftDoc, err := document.Load(left, 2)
	if err != nil {
		t.Fatalf("Load left failed: %v", err)
	}
	rightDoc, err := document.Load(right, 2)
	if err != nil {
		t.Fatalf("Load right failed: %v", err)
	}

	// Tab expansion makes the indented lines identical.
	a := align.Align(leftDoc.Lines, rightDoc.Lines)
	if a.Stats.Matched != 3 {
		t.Errorf("Expected 3 matched lines, got %d (summary %q)",
			a.Stats.Matched, a.Stats.Summary())
	}
	if a.Stats.LeftOnly+a.Stats.Changed == 0 {
		t.Error("The removed line should count against the left side")
	}
	if a.Stats.RightOnly+a.Stats.Changed == 0 {
		t.Error("The added lines should count against the right side")
	}

	// Every matched row must carry equal trimmed text.
	for _, row := range a.Rows {
		if row.Matched() && strings.TrimSpace(row.Left) != strings.TrimSpace(row.Right) {
			t.Errorf("Matched row has unequal text: %q vs %q", row.Left, row.Right)
		}
	}
}

// TestIntegration_RejectsBadInputs verifies the load stage filters out
// files the viewer cannot display.
func TestIntegration_RejectsBadInputs(t *testing.T) {
	empty := createTempFile(t, "empty.txt", "\n  \n\n")
	if _, err := document.Load(empty, 2); !document.IsEmpty(err) {
		t.Errorf("Expected ErrEmpty for whitespace-only file, got %v", err)
	}

	binary := createTempFile(t, "bin.dat", "abc\x00def\n")
	if _, err := document.Load(binary, 2); !document.IsNotText(err) {
		t.Errorf("Expected ErrNotText for binary file, got %v", err)
	}
}

// =============================================================================
// LIVE RELOAD
// =============================================================================

// TestIntegration_WatchReload simulates the reload path: a watched file
// changes, the callback fires, and a fresh load sees the new content.
func TestIntegration_WatchReload(t *testing.T) {
	path := createTempFile(t, "watched.txt", "original\n")

	changed := make(chan struct{}, 1)
	w, err := document.NewWatcher(60*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()
	w.Watch()

	if err := os.WriteFile(path, []byte("original\nappended\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("Watcher did not report the change")
	}

	doc, err := document.Load(path, 2)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if doc.Len() != 2 {
		t.Errorf("Reload should see 2 lines, got %d", doc.Len())
	}
}

// =============================================================================
// CONFIGURATION ROUND-TRIP
// =============================================================================

// TestIntegration_ConfigRoundTrip writes a modified config through the
// TOML encoder and reads it back.
func TestIntegration_ConfigRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.UI.TabWidth = 4
	cfg.UI.Highlight = false
	cfg.Watch.DebounceMs = 500

	// Save() targets the home directory; round-trip through an explicit
	// path instead.
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ui]
highlight = false
tab_width = 4

[watch]
debounce_ms = 500
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	loaded, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.UI.TabWidth != cfg.UI.TabWidth {
		t.Errorf("TabWidth mismatch: %d vs %d", loaded.UI.TabWidth, cfg.UI.TabWidth)
	}
	if loaded.UI.Highlight != cfg.UI.Highlight {
		t.Error("Highlight flag did not survive the round-trip")
	}
	if loaded.Watch.DebounceMs != cfg.Watch.DebounceMs {
		t.Errorf("DebounceMs mismatch: %d vs %d", loaded.Watch.DebounceMs, cfg.Watch.DebounceMs)
	}
}
