// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align pairs the lines of two documents for side-by-side display.
//
// The pairing delegates the hard part, longest-common-subsequence line
// matching, to github.com/pmezard/go-difflib and translates its opcodes
// into a flat sequence of Row values, one per screen row of the diff
// view. Each Row carries the left and/or right line, 1-based line
// numbers, and a RowKind (match, differ, left-only, right-only).
//
//	alignment := align.Align(leftLines, rightLines)
//	for _, row := range alignment.Rows {
//	    // render row.Left / row.Right
//	}
//
// Identical inputs yield only RowMatch rows; fully disjoint inputs yield
// no RowMatch rows.
package align
