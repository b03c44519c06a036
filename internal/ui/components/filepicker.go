// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the diffwin TUI.
package components

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/diffwin/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// FilePickedMsg is emitted when the user selects a file.
type FilePickedMsg struct {
	Path string
}

// FilePickCancelMsg is emitted when the user backs out of the picker.
type FilePickCancelMsg struct{}

// =============================================================================
// FILE PICKER COMPONENT
// =============================================================================

// FilePicker lets the user walk the filesystem and choose a file. It
// wraps a Menu whose entries are the current directory's contents:
// "../" first, then directories with a trailing slash, then files.
// Unreadable directories surface as a menu error rather than a crash.
type FilePicker struct {
	dir   string
	menu  *Menu
	theme *styles.Theme

	width  int
	height int
}

// NewFilePicker creates a picker rooted at dir. Falls back to "." when
// dir cannot be resolved.
func NewFilePicker(theme *styles.Theme, title, dir string) *FilePicker {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = "."
	}

	p := &FilePicker{
		dir:    abs,
		theme:  theme,
		width:  80,
		height: 24,
	}
	p.menu = NewMenu(theme, title, nil)
	p.menu.Hint = "enter select  esc back"
	p.reload()
	return p
}

// SetSize sets the picker dimensions.
func (p *FilePicker) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.menu.SetSize(width, height)
}

// Dir returns the directory currently listed.
func (p *FilePicker) Dir() string {
	return p.dir
}

// SetError surfaces an error on the underlying menu. The root model
// uses this when a picked file fails to load.
func (p *FilePicker) SetError(msg string) {
	p.menu.SetError(msg)
}

// reload lists the current directory into the menu.
func (p *FilePicker) reload() {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		// Keep the old listing; just tell the user why descending failed.
		p.menu.SetError(fmt.Sprintf("cannot read %s: %v", filepath.Base(p.dir), err))
		return
	}

	var dirs, files []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name()+"/")
		} else {
			files = append(files, e.Name())
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	items := make([]MenuItem, 0, len(dirs)+len(files)+1)
	if p.dir != filepath.Dir(p.dir) {
		items = append(items, MenuItem{Label: "../"})
	}
	for _, d := range dirs {
		items = append(items, MenuItem{Label: d})
	}
	for _, f := range files {
		items = append(items, MenuItem{Label: f})
	}

	p.menu.Title = p.dir
	p.menu.SetItems(items)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles a key message, translating menu selections into
// filesystem navigation.
func (p *FilePicker) Update(msg tea.KeyMsg) (*FilePicker, tea.Cmd) {
	menu, cmd := p.menu.Update(msg)
	p.menu = menu
	if cmd == nil {
		return p, nil
	}

	switch result := cmd().(type) {
	case MenuSelectMsg:
		return p.open(result.Item.Label)
	case MenuCancelMsg:
		return p, func() tea.Msg { return FilePickCancelMsg{} }
	}
	return p, nil
}

// open descends into a directory or emits the chosen file.
func (p *FilePicker) open(label string) (*FilePicker, tea.Cmd) {
	if label == "../" {
		p.dir = filepath.Dir(p.dir)
		p.reload()
		return p, nil
	}

	if strings.HasSuffix(label, "/") {
		next := filepath.Join(p.dir, strings.TrimSuffix(label, "/"))
		if _, err := os.ReadDir(next); err != nil {
			p.menu.SetError(fmt.Sprintf("cannot open %s: %v", label, err))
			return p, nil
		}
		p.dir = next
		p.reload()
		return p, nil
	}

	path := filepath.Join(p.dir, label)
	return p, func() tea.Msg { return FilePickedMsg{Path: path} }
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the picker.
func (p *FilePicker) View() string {
	return p.menu.View()
}
