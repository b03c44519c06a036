// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the diffwin application.
package util

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// UNICODE: All slicing here works on display columns, not bytes.
// Pane windows are cut by terminal cell so CJK and other double-width
// characters never straddle a pane boundary.

// TruncateRunes truncates a string to a maximum number of runes (characters).
// This is safe for UTF-8 strings as it counts characters, not bytes.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CutWidth returns the window of s that starts at display column startCol
// and spans at most maxWidth columns. A double-width rune that would
// straddle either edge of the window is dropped rather than split.
func CutWidth(s string, startCol, maxWidth int) string {
	if maxWidth <= 0 || startCol < 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col+w <= startCol {
			col += w
			continue
		}
		if col < startCol {
			// wide rune straddles the left edge
			col += w
			continue
		}
		if col+w > startCol+maxWidth {
			break
		}
		b.WriteRune(r)
		col += w
	}
	return b.String()
}

// PadWidth pads s with spaces on the right to exactly width display
// columns, truncating first if it is already wider.
func PadWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = CutWidth(s, 0, width)
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// ExpandTabs replaces each tab with tabWidth spaces so column offsets
// stay cell-accurate during horizontal scrolling.
func ExpandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// IsPrintableText reports whether s looks like displayable text: no
// control characters other than tab. Used to reject binary files before
// they reach the diff view.
func IsPrintableText(s string) bool {
	for _, r := range s {
		if r == '\t' {
			continue
		}
		if r == unicode.ReplacementChar || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
