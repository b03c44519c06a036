// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the diffwin TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/diffwin/internal/align"
	"github.com/jeranaias/diffwin/internal/document"
	"github.com/jeranaias/diffwin/internal/ui/styles"
	"github.com/jeranaias/diffwin/internal/util"
)

// HorizontalStep is how many columns a left/right keypress shifts a pane.
const HorizontalStep = 4

// =============================================================================
// MESSAGES
// =============================================================================

// DiffCloseMsg is emitted when the user leaves the diff view.
type DiffCloseMsg struct{}

// =============================================================================
// KEY MAP
// =============================================================================

// DiffKeyMap defines the diff view key bindings.
type DiffKeyMap struct {
	Up              key.Binding
	Down            key.Binding
	PgUp            key.Binding
	PgDown          key.Binding
	Home            key.Binding
	End             key.Binding
	Left            key.Binding
	Right           key.Binding
	ToggleLock      key.Binding
	SwitchPane      key.Binding
	SepLeft         key.Binding
	SepRight        key.Binding
	SepReset        key.Binding
	ToggleHighlight key.Binding
	Quit            key.Binding
}

// DefaultDiffKeyMap returns the standard diff view bindings.
func DefaultDiffKeyMap() DiffKeyMap {
	return DiffKeyMap{
		Up:              key.NewBinding(key.WithKeys("up", "k")),
		Down:            key.NewBinding(key.WithKeys("down", "j")),
		PgUp:            key.NewBinding(key.WithKeys("pgup")),
		PgDown:          key.NewBinding(key.WithKeys("pgdown")),
		Home:            key.NewBinding(key.WithKeys("home")),
		End:             key.NewBinding(key.WithKeys("end")),
		Left:            key.NewBinding(key.WithKeys("left")),
		Right:           key.NewBinding(key.WithKeys("right")),
		ToggleLock:      key.NewBinding(key.WithKeys(" ")),
		SwitchPane:      key.NewBinding(key.WithKeys("tab")),
		SepLeft:         key.NewBinding(key.WithKeys("-")),
		SepRight:        key.NewBinding(key.WithKeys("+")),
		SepReset:        key.NewBinding(key.WithKeys("=")),
		ToggleHighlight: key.NewBinding(key.WithKeys("d", "D", "h", "H")),
		Quit:            key.NewBinding(key.WithKeys("esc", "q", "Q")),
	}
}

// =============================================================================
// PANES
// =============================================================================

// Pane identifies one side of the split.
type Pane int

const (
	PaneLeft Pane = iota
	PaneRight
)

// String returns the pane caption.
func (p Pane) String() string {
	if p == PaneRight {
		return "right"
	}
	return "left"
}

// =============================================================================
// DIFF VIEW COMPONENT
// =============================================================================

// DiffView renders two documents side by side, split by a movable
// separator. Scrolling is locked (both panes move together) or
// independent, with tab selecting which pane an unlocked scroll moves.
// Rows whose trimmed text matches across the split can be highlighted.
type DiffView struct {
	left  *document.Document
	right *document.Document
	stats align.Stats

	width  int
	height int

	// gap is the blank half-gap in columns on each side of the separator
	gap int
	// pageOverlap is how many rows a page jump keeps from the previous page
	pageOverlap int

	// Row offsets per pane. -1 shows one blank row above the first line;
	// the maximum puts the end marker on the last visible row.
	leftRow  int
	rightRow int

	// Column offsets per pane for horizontal scrolling
	leftCol  int
	rightCol int

	locked    bool
	active    Pane
	sepShift  int
	highlight bool

	keys  DiffKeyMap
	theme *styles.Theme
}

// NewDiffView creates a diff view over two loaded documents.
func NewDiffView(theme *styles.Theme, left, right *document.Document, highlight bool, gap, pageOverlap int) *DiffView {
	dv := &DiffView{
		width:       80,
		height:      24,
		gap:         gap,
		pageOverlap: pageOverlap,
		locked:      true,
		highlight:   highlight,
		keys:        DefaultDiffKeyMap(),
		theme:       theme,
	}
	dv.SetDocuments(left, right)
	return dv
}

// SetDocuments replaces both documents, preserving scroll positions
// where they remain valid. Used on initial load and live reload.
func (dv *DiffView) SetDocuments(left, right *document.Document) {
	dv.left = left
	dv.right = right
	dv.stats = align.Align(left.Lines, right.Lines).Stats
	dv.clampOffsets()
}

// SetSize sets the view dimensions.
func (dv *DiffView) SetSize(width, height int) {
	dv.width = width
	dv.height = height
	dv.clampOffsets()
}

// Locked reports whether the panes scroll together.
func (dv *DiffView) Locked() bool { return dv.locked }

// Highlighting reports whether matched rows are highlighted.
func (dv *DiffView) Highlighting() bool { return dv.highlight }

// ActivePane returns the pane an unlocked scroll moves.
func (dv *DiffView) ActivePane() Pane { return dv.active }

// Stats returns the line-level comparison statistics.
func (dv *DiffView) Stats() align.Stats { return dv.stats }

// =============================================================================
// GEOMETRY
// =============================================================================

// contentHeight is the number of text rows below the caption row.
func (dv *DiffView) contentHeight() int {
	h := dv.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

// pageJump is how far a pgup/pgdown moves.
func (dv *DiffView) pageJump() int {
	jump := dv.contentHeight() - dv.pageOverlap
	if jump < 1 {
		jump = 1
	}
	return jump
}

// middle returns the separator column, bounded so both panes keep at
// least one visible column.
func (dv *DiffView) middle() int {
	mid := dv.width/2 + dv.sepShift
	if mid < 2 {
		mid = 2
	}
	if mid > dv.width-2 {
		mid = dv.width - 2
	}
	return mid
}

// paneWidths returns the text width of each pane and the column where
// the right pane starts. A pane squeezed out by the separator collapses
// to zero width and simply disappears.
func (dv *DiffView) paneWidths() (leftWidth, rightStart, rightWidth int) {
	mid := dv.middle()
	leftWidth = mid - dv.gap
	if leftWidth < 0 {
		leftWidth = 0
	}
	rightStart = mid + 1 + dv.gap
	rightWidth = dv.width - rightStart
	if rightWidth < 0 {
		rightWidth = 0
	}
	return leftWidth, rightStart, rightWidth
}

// maxRowOffset is the offset that puts the end marker on the last
// visible row.
func maxRowOffset(doc *document.Document, contentHeight int) int {
	max := doc.Len() + 1 - contentHeight
	if max < -1 {
		max = -1
	}
	return max
}

// clampOffsets keeps all scroll offsets inside their valid ranges.
func (dv *DiffView) clampOffsets() {
	if dv.left == nil || dv.right == nil {
		return
	}
	h := dv.contentHeight()

	clampRow := func(off, max int) int {
		if off > max {
			off = max
		}
		if off < -1 {
			off = -1
		}
		return off
	}
	if dv.locked {
		// The longer document bounds a locked scroll.
		max := maxRowOffset(dv.left, h)
		if m := maxRowOffset(dv.right, h); m > max {
			max = m
		}
		dv.leftRow = clampRow(dv.leftRow, max)
		dv.rightRow = clampRow(dv.rightRow, max)
	} else {
		dv.leftRow = clampRow(dv.leftRow, maxRowOffset(dv.left, h))
		dv.rightRow = clampRow(dv.rightRow, maxRowOffset(dv.right, h))
	}

	clampCol := func(off, maxWidth int) int {
		if off > maxWidth-1 {
			off = maxWidth - 1
		}
		if off < 0 {
			off = 0
		}
		return off
	}
	dv.leftCol = clampCol(dv.leftCol, dv.left.MaxWidth)
	dv.rightCol = clampCol(dv.rightCol, dv.right.MaxWidth)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles a key message.
func (dv *DiffView) Update(msg tea.KeyMsg) (*DiffView, tea.Cmd) {
	switch {
	case key.Matches(msg, dv.keys.Up):
		dv.scrollRows(-1)
	case key.Matches(msg, dv.keys.Down):
		dv.scrollRows(1)
	case key.Matches(msg, dv.keys.PgUp):
		dv.scrollRows(-dv.pageJump())
	case key.Matches(msg, dv.keys.PgDown):
		dv.scrollRows(dv.pageJump())
	case key.Matches(msg, dv.keys.Home):
		dv.setRows(-1)
	case key.Matches(msg, dv.keys.End):
		dv.scrollRows(dv.left.Len() + dv.right.Len()) // Clamp does the rest
	case key.Matches(msg, dv.keys.Left):
		dv.scrollCols(-HorizontalStep)
	case key.Matches(msg, dv.keys.Right):
		dv.scrollCols(HorizontalStep)
	case key.Matches(msg, dv.keys.ToggleLock):
		dv.locked = !dv.locked
		dv.clampOffsets()
	case key.Matches(msg, dv.keys.SwitchPane):
		if !dv.locked {
			if dv.active == PaneLeft {
				dv.active = PaneRight
			} else {
				dv.active = PaneLeft
			}
		}
	case key.Matches(msg, dv.keys.SepLeft):
		dv.sepShift--
		dv.clampShift()
	case key.Matches(msg, dv.keys.SepRight):
		dv.sepShift++
		dv.clampShift()
	case key.Matches(msg, dv.keys.SepReset):
		dv.sepShift = 0
	case key.Matches(msg, dv.keys.ToggleHighlight):
		dv.highlight = !dv.highlight
	case key.Matches(msg, dv.keys.Quit):
		return dv, func() tea.Msg { return DiffCloseMsg{} }
	}
	return dv, nil
}

// scrollRows moves the locked pair or the active pane by delta rows.
func (dv *DiffView) scrollRows(delta int) {
	if dv.locked {
		dv.leftRow += delta
		dv.rightRow += delta
	} else if dv.active == PaneLeft {
		dv.leftRow += delta
	} else {
		dv.rightRow += delta
	}
	dv.clampOffsets()
}

// setRows jumps the locked pair or the active pane to an absolute offset.
func (dv *DiffView) setRows(off int) {
	if dv.locked {
		dv.leftRow = off
		dv.rightRow = off
	} else if dv.active == PaneLeft {
		dv.leftRow = off
	} else {
		dv.rightRow = off
	}
	dv.clampOffsets()
}

// scrollCols shifts horizontal offsets by delta columns.
func (dv *DiffView) scrollCols(delta int) {
	if dv.locked {
		dv.leftCol += delta
		dv.rightCol += delta
	} else if dv.active == PaneLeft {
		dv.leftCol += delta
	} else {
		dv.rightCol += delta
	}
	dv.clampOffsets()
}

// clampShift keeps the separator inside its movable range.
func (dv *DiffView) clampShift() {
	// middle() clamps the rendered position; keep the shift itself from
	// drifting far past the bound so a reversal responds immediately.
	minShift := 2 - dv.width/2
	maxShift := dv.width - 2 - dv.width/2
	if dv.sepShift < minShift {
		dv.sepShift = minShift
	}
	if dv.sepShift > maxShift {
		dv.sepShift = maxShift
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the split view.
func (dv *DiffView) View() string {
	if dv.left == nil || dv.right == nil {
		return "no files loaded"
	}

	leftWidth, rightStart, rightWidth := dv.paneWidths()
	mid := dv.middle()
	gapFill := strings.Repeat(" ", dv.gap)

	var b strings.Builder
	b.WriteString(dv.renderCaptions(leftWidth, rightStart, rightWidth, mid, gapFill))
	b.WriteString("\n")

	h := dv.contentHeight()
	for row := 0; row < h; row++ {
		leftIdx := dv.leftRow + row
		rightIdx := dv.rightRow + row

		leftText, leftKind := dv.cellText(dv.left, leftIdx, dv.leftCol, leftWidth)
		rightText, rightKind := dv.cellText(dv.right, rightIdx, dv.rightCol, rightWidth)

		matched := dv.highlight && leftKind == cellLine && rightKind == cellLine &&
			dv.rowMatched(leftIdx, rightIdx)

		b.WriteString(dv.styleCell(util.PadWidth(leftText, leftWidth), leftKind, matched))
		b.WriteString(gapFill)
		b.WriteString(dv.theme.Separator.Render("|"))
		b.WriteString(gapFill)
		rightCell := rightText
		if matched {
			rightCell = util.PadWidth(rightText, rightWidth)
		}
		b.WriteString(dv.styleCell(rightCell, rightKind, matched))
		if row < h-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// styleCell applies the matched-line or end-marker style to plain text.
func (dv *DiffView) styleCell(text string, kind cellKind, matched bool) string {
	switch {
	case matched:
		return dv.theme.MatchedLine.Render(text)
	case kind == cellEnd:
		return dv.theme.EndMarker.Render(text)
	case kind == cellLine:
		return dv.theme.PaneText.Render(text)
	default:
		return text
	}
}

// renderCaptions renders the top row naming each pane. The active pane
// carries a marker while scrolling is unlocked.
func (dv *DiffView) renderCaptions(leftWidth, rightStart, rightWidth, mid int, gapFill string) string {
	leftCap := "left: " + dv.left.Name
	rightCap := "right: " + dv.right.Name
	if !dv.locked {
		if dv.active == PaneLeft {
			leftCap = "*" + leftCap
		} else {
			rightCap = "*" + rightCap
		}
	}

	leftCap = util.TruncateRunes(leftCap, leftWidth)
	rightCap = util.TruncateRunes(rightCap, rightWidth)

	var b strings.Builder
	b.WriteString(dv.theme.PaneCaption.Render(util.PadWidth(leftCap, leftWidth)))
	b.WriteString(gapFill)
	b.WriteString(dv.theme.Separator.Render("|"))
	b.WriteString(gapFill)
	b.WriteString(dv.theme.PaneCaption.Render(rightCap))
	return b.String()
}

// cellKind classifies what one pane shows at one screen row.
type cellKind int

const (
	cellBlank cellKind = iota
	cellLine
	cellEnd
)

// cellText produces the visible slice of one pane at one row. Only
// cellLine rows are eligible for match highlighting.
func (dv *DiffView) cellText(doc *document.Document, idx, col, width int) (string, cellKind) {
	if idx < 0 || idx > doc.Len() {
		return "", cellBlank
	}
	if idx == doc.Len() {
		return util.TruncateRunes("~ END ~", width), cellEnd
	}
	line, _ := doc.Line(idx)
	return util.CutWidth(line, col, width), cellLine
}

// rowMatched reports whether the lines shown at one screen row have
// equal trimmed text.
func (dv *DiffView) rowMatched(leftIdx, rightIdx int) bool {
	l, lok := dv.left.Line(leftIdx)
	r, rok := dv.right.Line(rightIdx)
	return lok && rok && align.EqualTrimmed(l, r)
}
