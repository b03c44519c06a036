// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the diffwin TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/diffwin/internal/align"
	"github.com/jeranaias/diffwin/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the single-row bar under the diff view showing the
// comparison stats, the scroll mode, and the key hints.
type StatusBar struct {
	Width int

	Stats     align.Stats
	Locked    bool
	Active    Pane
	Highlight bool
	Watching  bool

	theme *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetSize sets the bar width.
func (sb *StatusBar) SetSize(width int) {
	sb.Width = width
}

// View renders the bar.
func (sb *StatusBar) View() string {
	var parts []string

	parts = append(parts, sb.theme.StatsValue.Render(sb.Stats.Summary()))

	if sb.Locked {
		parts = append(parts, "locked")
	} else {
		parts = append(parts, "scroll:"+sb.Active.String())
	}

	if sb.Highlight {
		parts = append(parts, "hl:on")
	} else {
		parts = append(parts, "hl:off")
	}

	if sb.Watching {
		parts = append(parts, "watch")
	}

	hints := sb.theme.ShortcutKey.Render("space") + sb.theme.ShortcutDesc.Render(" lock  ") +
		sb.theme.ShortcutKey.Render("tab") + sb.theme.ShortcutDesc.Render(" pane  ") +
		sb.theme.ShortcutKey.Render("q") + sb.theme.ShortcutDesc.Render(" back")
	parts = append(parts, hints)

	line := strings.Join(parts, "  ")
	if lipgloss.Width(line) > sb.Width {
		// Drop the hints on narrow terminals.
		line = strings.Join(parts[:len(parts)-1], "  ")
	}
	return sb.theme.StatusBar.Render(line)
}
