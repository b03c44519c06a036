// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the diffwin TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/diffwin/internal/ui/styles"
	"github.com/jeranaias/diffwin/internal/util"
)

// MenuJump is how many entries pgup/pgdown move the cursor.
const MenuJump = 4

// =============================================================================
// MESSAGES
// =============================================================================

// MenuSelectMsg is emitted when the user confirms an entry.
type MenuSelectMsg struct {
	Index int
	Item  MenuItem
}

// MenuCancelMsg is emitted when the user backs out of the menu.
type MenuCancelMsg struct{}

// =============================================================================
// KEY MAP
// =============================================================================

// MenuKeyMap defines the menu key bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultMenuKeyMap returns the standard menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		PgUp:   key.NewBinding(key.WithKeys("pgup")),
		PgDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:   key.NewBinding(key.WithKeys("home")),
		End:    key.NewBinding(key.WithKeys("end")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "Q")),
	}
}

// =============================================================================
// MENU COMPONENT
// =============================================================================

// MenuItem is a single selectable entry.
type MenuItem struct {
	Label string
	// Disabled entries render but cannot be selected (info-box mode)
	Disabled bool
}

// Menu is a scrollable vertical list with a title, an optional hint
// line, and an error line that clears on the next keypress.
type Menu struct {
	Title string
	Hint  string

	items  []MenuItem
	cursor int
	offset int // First visible item

	errMsg string

	width  int
	height int
	keys   MenuKeyMap
	theme  *styles.Theme
}

// NewMenu creates a menu over the given items.
func NewMenu(theme *styles.Theme, title string, items []MenuItem) *Menu {
	m := &Menu{
		Title:  title,
		items:  items,
		width:  80,
		height: 24,
		keys:   DefaultMenuKeyMap(),
		theme:  theme,
	}
	m.skipDisabledForward()
	return m
}

// SetSize sets the menu dimensions.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// SetItems replaces the entries and resets the cursor.
func (m *Menu) SetItems(items []MenuItem) {
	m.items = items
	m.cursor = 0
	m.offset = 0
	m.skipDisabledForward()
}

// SetError displays an error line until the next keypress.
func (m *Menu) SetError(msg string) {
	m.errMsg = msg
}

// Selected returns the current cursor index.
func (m *Menu) Selected() int {
	return m.cursor
}

// visibleRows is how many entries fit below the title, hint, and error
// lines.
func (m *Menu) visibleRows() int {
	rows := m.height - 2 // Title and blank line
	if m.Hint != "" {
		rows--
	}
	if m.errMsg != "" {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles a key message. Selection and cancellation surface as
// commands so the root model can react.
func (m *Menu) Update(msg tea.KeyMsg) (*Menu, tea.Cmd) {
	// Any keypress clears a shown error.
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PgUp):
		m.move(-MenuJump)
	case key.Matches(msg, m.keys.PgDown):
		m.move(MenuJump)
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.skipDisabledForward()
		m.clampScroll()
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.items) - 1
		m.skipDisabledBackward()
		m.clampScroll()
	case key.Matches(msg, m.keys.Select):
		if m.cursor >= 0 && m.cursor < len(m.items) && !m.items[m.cursor].Disabled {
			idx, item := m.cursor, m.items[m.cursor]
			return m, func() tea.Msg { return MenuSelectMsg{Index: idx, Item: item} }
		}
	case key.Matches(msg, m.keys.Cancel):
		return m, func() tea.Msg { return MenuCancelMsg{} }
	}
	return m, nil
}

// move shifts the cursor by delta, clamping at the ends.
func (m *Menu) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if delta > 0 {
		m.skipDisabledForward()
	} else {
		m.skipDisabledBackward()
	}
	m.clampScroll()
}

// skipDisabledForward advances the cursor past disabled entries.
func (m *Menu) skipDisabledForward() {
	for m.cursor < len(m.items)-1 && m.items[m.cursor].Disabled {
		m.cursor++
	}
}

// skipDisabledBackward retreats the cursor past disabled entries.
func (m *Menu) skipDisabledBackward() {
	for m.cursor > 0 && m.items[m.cursor].Disabled {
		m.cursor--
	}
}

// clampScroll keeps the cursor inside the visible window.
func (m *Menu) clampScroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the menu.
func (m *Menu) View() string {
	var b strings.Builder

	b.WriteString(m.theme.MenuTitle.Render(m.Title))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.theme.MenuError.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := m.visibleRows()
	end := m.offset + rows
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := m.offset; i < end; i++ {
		label := util.TruncateRunes(m.items[i].Label, m.width-4)
		switch {
		case i == m.cursor && !m.items[i].Disabled:
			b.WriteString(m.theme.MenuItemSelected.Render("> " + label))
		case m.items[i].Disabled:
			b.WriteString(m.theme.MenuHint.Render("  " + label))
		default:
			b.WriteString(m.theme.MenuItem.Render("  " + label))
		}
		b.WriteString("\n")
	}

	// Scroll markers when entries are clipped.
	if m.offset > 0 || end < len(m.items) {
		marks := ""
		if m.offset > 0 {
			marks += "^ "
		}
		if end < len(m.items) {
			marks += "v"
		}
		b.WriteString(m.theme.MenuScrollMark.Render(marks))
		b.WriteString("\n")
	}

	if m.Hint != "" {
		b.WriteString(m.theme.MenuHint.Render(m.Hint))
	}

	return b.String()
}
