// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package document loads the text files compared by the diff view.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/diffwin/internal/util"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrEmpty indicates the file contained no displayable lines.
var ErrEmpty = errors.New("file appears empty")

// ErrNotText indicates the file contains non-printable content.
var ErrNotText = errors.New("file is not printable text")

// IsEmpty returns true if the error indicates an empty input file.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}

// IsNotText returns true if the error indicates a binary input file.
func IsNotText(err error) bool {
	return errors.Is(err, ErrNotText)
}

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is one side of the comparison: an ordered list of display-ready
// lines plus the metadata the diff view needs for horizontal scrolling.
type Document struct {
	Path     string   // Absolute path of the input file
	Name     string   // Base name for captions and menu labels
	Lines    []string // Normalized lines (tabs expanded, trailing space stripped)
	MaxWidth int      // Display width of the widest line, in terminal cells
}

// Load reads the file at path and normalizes it for display: trailing
// whitespace is stripped, tabs become tabWidth spaces, and blank lines
// are dropped so both panes stay dense. Binary content is rejected.
func Load(path string, tabWidth int) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc := &Document{
		Path: abs,
		Name: filepath.Base(abs),
	}

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if line == "" {
			continue
		}
		if !util.IsPrintableText(line) {
			return nil, fmt.Errorf("%s: %w", doc.Name, ErrNotText)
		}
		line = util.ExpandTabs(line, tabWidth)
		doc.Lines = append(doc.Lines, line)
		if w := util.StringWidth(line); w > doc.MaxWidth {
			doc.MaxWidth = w
		}
	}

	if len(doc.Lines) == 0 {
		return nil, fmt.Errorf("%s: %w", doc.Name, ErrEmpty)
	}

	return doc, nil
}

// Len returns the number of lines in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Line returns the line at index i, or "" when i is out of range. The
// diff view iterates screen rows rather than document rows, so an
// out-of-range probe is the common case near EOF, not an error.
func (d *Document) Line(i int) (string, bool) {
	if d == nil || i < 0 || i >= len(d.Lines) {
		return "", false
	}
	return d.Lines[i], true
}
