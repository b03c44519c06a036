// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package document loads the text files compared by the diff view.
//
// Load reads a file fully, normalizes it for terminal display (trailing
// whitespace stripped, tabs expanded, blank lines dropped), and rejects
// binary or empty inputs with the sentinel errors ErrNotText and
// ErrEmpty so callers can surface a menu error instead of crashing.
//
// Watcher provides optional live reload: it observes both input files
// through fsnotify and fires a debounced callback when either changes,
// which the diff view uses to recompute the alignment in place.
package document
