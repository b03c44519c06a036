// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the diffwin application.
//
// This package contains common helper functions used throughout the
// application for display-width string handling and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - CutWidth / PadWidth: cell-accurate windowing for pane rendering
//   - ExpandTabs: tab normalization before display
//   - IsPrintableText: binary-file detection for input validation
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Cut the visible window of a line for the right-hand pane
//	cell := util.CutWidth(line, colOffset, paneWidth)
//
//	// Write config files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
