// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package internal contains race detection tests for diffwin.
//
// Run with: go test -race -v ./internal/...
//
// These tests exercise the pieces shared between goroutines: the global
// config and the file watcher callback path.
package internal

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeranaias/diffwin/internal/align"
	"github.com/jeranaias/diffwin/internal/config"
	"github.com/jeranaias/diffwin/internal/document"
)

const (
	// Number of concurrent goroutines for race tests
	raceConcurrency = 50
	// Number of iterations per goroutine
	raceIterations = 20
)

// =============================================================================
// CONFIG CONCURRENCY TESTS
// =============================================================================

// TestConcurrency_ConfigGlobalAccess hammers the global config from
// readers and writers simultaneously.
func TestConcurrency_ConfigGlobalAccess(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < raceConcurrency; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			for j := 0; j < raceIterations; j++ {
				config.SetGlobal(config.Default())
			}
		}()

		go func() {
			defer wg.Done()
			for j := 0; j < raceIterations; j++ {
				cfg := config.Global()
				if cfg == nil {
					t.Error("Global() returned nil")
					return
				}
				_ = cfg.UI.TabWidth
				_ = cfg.UI.Highlight
				_ = cfg.Watch.Enabled
			}
		}()
	}

	wg.Wait()
}

// =============================================================================
// ALIGNMENT CONCURRENCY TESTS
// =============================================================================

// TestConcurrency_Align verifies Align is safe to call from many
// goroutines at once (the reload path recomputes it off a callback).
func TestConcurrency_Align(t *testing.T) {
	lhs := []string{"one", "two", "three", "four"}
	rhs := []string{"one", "changed", "three", "extra"}

	var wg sync.WaitGroup
	for i := 0; i < raceConcurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < raceIterations; j++ {
				a := align.Align(lhs, rhs)
				if len(a.Rows) == 0 {
					t.Error("Align produced no rows")
					return
				}
			}
		}()
	}
	wg.Wait()
}

// =============================================================================
// WATCHER CONCURRENCY TESTS
// =============================================================================

// TestConcurrency_WatcherCloseRace closes watchers while their
// callbacks may still be firing.
func TestConcurrency_WatcherCloseRace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var fired atomic.Int64

	for i := 0; i < 10; i++ {
		w, err := document.NewWatcher(50*time.Millisecond, func() {
			fired.Add(1)
		}, path)
		if err != nil {
			t.Fatalf("NewWatcher failed: %v", err)
		}
		w.Watch()

		go func() {
			_ = os.WriteFile(path, []byte("changed\n"), 0644)
		}()

		time.Sleep(10 * time.Millisecond)
		if err := w.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	}
}

// TestConcurrency_WatcherNotify verifies a change fires the callback
// after the debounce window.
func TestConcurrency_WatcherNotify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	if err := os.WriteFile(path, []byte("v1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	notified := make(chan struct{}, 8)
	w, err := document.NewWatcher(60*time.Millisecond, func() {
		notified <- struct{}{}
	}, path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()
	w.Watch()

	if err := os.WriteFile(path, []byte("v2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-notified:
	case <-time.After(3 * time.Second):
		t.Fatal("Watcher did not fire after a file change")
	}
}
