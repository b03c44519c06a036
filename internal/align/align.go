// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align pairs the lines of two documents for side-by-side display.
package align

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// =============================================================================
// ROW TYPES
// =============================================================================

// RowKind classifies a paired row in the side-by-side alignment.
type RowKind int

const (
	// RowMatch means both sides carry the same line.
	RowMatch RowKind = iota
	// RowDiffer means both sides carry a line but the content differs.
	RowDiffer
	// RowLeftOnly means only the left document has a line at this row.
	RowLeftOnly
	// RowRightOnly means only the right document has a line at this row.
	RowRightOnly
)

// String returns the string representation of a row kind.
func (k RowKind) String() string {
	switch k {
	case RowMatch:
		return "match"
	case RowDiffer:
		return "differ"
	case RowLeftOnly:
		return "left-only"
	case RowRightOnly:
		return "right-only"
	default:
		return "unknown"
	}
}

// Row is one aligned pair of lines. An absent side has its Has flag false
// and a zero line number.
type Row struct {
	Left     string // Left line content ("" when absent)
	Right    string // Right line content ("" when absent)
	HasLeft  bool   // Whether the left document has a line here
	HasRight bool   // Whether the right document has a line here
	LeftNum  int    // 1-based line number in the left document (0 if absent)
	RightNum int    // 1-based line number in the right document (0 if absent)
	Kind     RowKind
}

// Matched reports whether both sides are present and equal.
func (r Row) Matched() bool {
	return r.Kind == RowMatch
}

// =============================================================================
// STATS
// =============================================================================

// Stats summarizes an alignment.
type Stats struct {
	Matched   int // Rows where both sides are identical
	Changed   int // Rows where both sides are present but differ
	LeftOnly  int // Rows present only in the left document
	RightOnly int // Rows present only in the right document
}

// Summary returns a human-readable one-line summary of the stats.
func (s Stats) Summary() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d same", s.Matched))
	if s.Changed > 0 {
		parts = append(parts, fmt.Sprintf("%d changed", s.Changed))
	}
	if s.LeftOnly > 0 {
		parts = append(parts, fmt.Sprintf("-%d", s.LeftOnly))
	}
	if s.RightOnly > 0 {
		parts = append(parts, fmt.Sprintf("+%d", s.RightOnly))
	}
	return strings.Join(parts, " ")
}

// =============================================================================
// ALIGNMENT
// =============================================================================

// Alignment is the full pairing of two documents.
type Alignment struct {
	Rows  []Row
	Stats Stats
}

// Align pairs the lines of lhs and rhs using the difflib sequence matcher.
// The row sequence preserves the order of both inputs: walking the rows
// and keeping only HasLeft reproduces lhs, and likewise for rhs.
func Align(lhs, rhs []string) *Alignment {
	a := &Alignment{}

	matcher := difflib.NewMatcher(lhs, rhs)
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; op.I1+k < op.I2; k++ {
				a.push(Row{
					Left:     lhs[op.I1+k],
					Right:    rhs[op.J1+k],
					HasLeft:  true,
					HasRight: true,
					LeftNum:  op.I1 + k + 1,
					RightNum: op.J1 + k + 1,
					Kind:     RowMatch,
				})
			}
		case 'r':
			// Pair replaced lines row for row; the longer side spills
			// into one-sided rows.
			nl, nr := op.I2-op.I1, op.J2-op.J1
			for k := 0; k < nl || k < nr; k++ {
				row := Row{}
				if k < nl {
					row.Left = lhs[op.I1+k]
					row.HasLeft = true
					row.LeftNum = op.I1 + k + 1
				}
				if k < nr {
					row.Right = rhs[op.J1+k]
					row.HasRight = true
					row.RightNum = op.J1 + k + 1
				}
				switch {
				case row.HasLeft && row.HasRight:
					row.Kind = RowDiffer
				case row.HasLeft:
					row.Kind = RowLeftOnly
				default:
					row.Kind = RowRightOnly
				}
				a.push(row)
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				a.push(Row{
					Left:    lhs[i],
					HasLeft: true,
					LeftNum: i + 1,
					Kind:    RowLeftOnly,
				})
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				a.push(Row{
					Right:    rhs[j],
					HasRight: true,
					RightNum: j + 1,
					Kind:     RowRightOnly,
				})
			}
		}
	}

	return a
}

// push appends a row and updates the running stats.
func (a *Alignment) push(row Row) {
	a.Rows = append(a.Rows, row)
	switch row.Kind {
	case RowMatch:
		a.Stats.Matched++
	case RowDiffer:
		a.Stats.Changed++
	case RowLeftOnly:
		a.Stats.LeftOnly++
	case RowRightOnly:
		a.Stats.RightOnly++
	}
}

// AllMatched reports whether every row in the alignment is a match.
func (a *Alignment) AllMatched() bool {
	return a.Stats.Changed == 0 && a.Stats.LeftOnly == 0 && a.Stats.RightOnly == 0
}

// =============================================================================
// SCREEN-LEVEL COMPARISON
// =============================================================================

// EqualTrimmed reports whether two lines are equal ignoring leading and
// trailing whitespace. The diff view highlights lines that are the same
// AND sit on the same screen row, so this is evaluated per visible row
// against the current scroll offsets rather than against the alignment.
func EqualTrimmed(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
