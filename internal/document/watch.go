// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package document loads the text files compared by the diff view.
package document

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// FILE WATCHER
// =============================================================================

// Watcher watches the two input files and reports changes, debounced, via
// a callback. Editors typically replace files on save (write to temp,
// rename over), so the watcher registers the parent directories and
// filters events down to the two paths of interest.
type Watcher struct {
	watcher  *fsnotify.Watcher
	paths    map[string]bool // Watched file paths (absolute)
	debounce time.Duration
	notify   func()

	mu      sync.Mutex
	pending time.Time // Zero when no change is waiting

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the given files. The notify callback
// fires at most once per debounce window, from a background goroutine.
func NewWatcher(debounce time.Duration, notify func(), paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher:  fsw,
		paths:    make(map[string]bool, len(paths)),
		debounce: debounce,
		notify:   notify,
		ctx:      ctx,
		cancel:   cancel,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			fsw.Close()
			cancel()
			return nil, err
		}
	}

	return w, nil
}

// Watch starts the event and debounce goroutines.
func (w *Watcher) Watch() {
	go w.processEvents()
	go w.processPending()
}

// processEvents filters fsnotify events down to the watched files.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.paths[event.Name] {
				continue
			}
			// Write covers in-place saves; Create and Rename cover the
			// temp-file-and-rename save pattern.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the view simply stops reloading
		}
	}
}

// processPending fires the callback once the debounce window has passed.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			fire := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if fire {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if fire && w.notify != nil {
				w.notify()
			}
		}
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
