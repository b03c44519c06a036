// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the diffwin TUI.
package components

import (
	"strings"

	"github.com/jeranaias/diffwin/internal/ui/styles"
)

// =============================================================================
// HELP COMPONENT
// =============================================================================

// helpEntry is one key/description pair.
type helpEntry struct {
	keys string
	desc string
}

var diffHelpEntries = []helpEntry{
	{"up/down", "scroll one row"},
	{"pgup/pgdn", "scroll one page"},
	{"home", "jump to the top"},
	{"end", "jump past the last line"},
	{"left/right", "shift long lines sideways"},
	{"space", "toggle locked scrolling"},
	{"tab", "switch the scrolling pane"},
	{"+ / -", "move the separator"},
	{"=", "center the separator"},
	{"d or h", "toggle matched-line highlight"},
	{"q / esc", "back to the menu"},
}

// Help renders the command reference shown from the main menu.
type Help struct {
	width  int
	height int
	theme  *styles.Theme
}

// NewHelp creates the help screen.
func NewHelp(theme *styles.Theme) *Help {
	return &Help{
		width:  80,
		height: 24,
		theme:  theme,
	}
}

// SetSize sets the help dimensions.
func (h *Help) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the command list.
func (h *Help) View() string {
	var b strings.Builder
	b.WriteString(h.theme.MenuTitle.Render("Commands"))
	b.WriteString("\n\n")
	for _, e := range diffHelpEntries {
		b.WriteString(h.theme.HelpKey.Render(e.keys))
		b.WriteString(h.theme.HelpDesc.Render(e.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(h.theme.MenuHint.Render("press any key to return"))

	// The bordered box costs four columns; skip it on narrow terminals.
	if h.theme.GetLayoutMode() == styles.LayoutNarrow {
		return b.String()
	}
	return h.theme.HelpBox.Render(b.String())
}
