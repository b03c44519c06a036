// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the diffwin application.
package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")
	data := []byte("hello, world!")

	err := AtomicWriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	// Verify content
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "subdir", "deep", "test.txt")
	data := []byte("test data")

	err := AtomicWriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("File was not created: %v", err)
	}
}

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		expected string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"max too small for ellipsis", "hello", 3, "hel"},
		{"zero max", "hello", 0, ""},
		{"multibyte preserved", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateRunes(tt.input, tt.maxRunes)
			if result != tt.expected {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q",
					tt.input, tt.maxRunes, result, tt.expected)
			}
		})
	}
}

func TestCutWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		startCol int
		maxWidth int
		expected string
	}{
		{"full window", "abcdef", 0, 10, "abcdef"},
		{"left cut", "abcdef", 2, 10, "cdef"},
		{"right cut", "abcdef", 0, 3, "abc"},
		{"both cut", "abcdef", 1, 3, "bcd"},
		{"past end", "abc", 5, 3, ""},
		{"zero width", "abc", 0, 0, ""},
		{"wide rune inside window", "a漢b", 0, 4, "a漢b"},
		{"wide rune straddles right edge", "a漢b", 0, 2, "a"},
		{"wide rune straddles left edge", "漢ab", 1, 3, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CutWidth(tt.input, tt.startCol, tt.maxWidth)
			if result != tt.expected {
				t.Errorf("CutWidth(%q, %d, %d) = %q, want %q",
					tt.input, tt.startCol, tt.maxWidth, result, tt.expected)
			}
		})
	}
}

func TestPadWidth(t *testing.T) {
	if got := PadWidth("ab", 5); got != "ab   " {
		t.Errorf("PadWidth short: got %q", got)
	}
	if got := PadWidth("abcdef", 3); got != "abc" {
		t.Errorf("PadWidth long: got %q", got)
	}
	if got := PadWidth("漢", 4); got != "漢  " {
		t.Errorf("PadWidth wide: got %q", got)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("a\tb", 2); got != "a  b" {
		t.Errorf("ExpandTabs = %q, want %q", got, "a  b")
	}
	if got := ExpandTabs("\t\t", 4); got != "        " {
		t.Errorf("ExpandTabs double = %q", got)
	}
}

func TestIsPrintableText(t *testing.T) {
	if !IsPrintableText("plain text with\ttab") {
		t.Error("Expected tabbed text to be printable")
	}
	if IsPrintableText("binary\x00data") {
		t.Error("Expected NUL byte to be rejected")
	}
	if IsPrintableText("escape\x1b[31m") {
		t.Error("Expected escape sequence to be rejected")
	}
	if !IsPrintableText("unicode héllo 漢字") {
		t.Error("Expected unicode text to be printable")
	}
}
