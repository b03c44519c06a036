// diffwin - side-by-side file comparison for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/diffwin/internal/cli"
	"github.com/jeranaias/diffwin/internal/config"
	"github.com/jeranaias/diffwin/internal/document"
	"github.com/jeranaias/diffwin/internal/ui/components"
	"github.com/jeranaias/diffwin/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference so the file watcher goroutine can inject
// messages into the Bubble Tea event loop.
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func main() {
	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n\n", styles.RenderError(err.Error()))
		fmt.Fprint(os.Stderr, cli.Usage())
		os.Exit(2)
	}

	switch args.Mode {
	case cli.ModeHelp:
		fmt.Print(cli.Usage())
		return
	case cli.ModeVersion:
		fmt.Printf("diffwin %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, styles.RenderError("diffwin requires an interactive terminal"))
		os.Exit(1)
	}

	// Load configuration, then apply CLI overrides on top.
	var cfg *config.Config
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
			os.Exit(1)
		}
		config.SetGlobal(cfg)
	} else {
		cfg = config.Global()
	}
	if args.NoHighlight {
		cfg.UI.Highlight = false
	}
	if args.NoWatch {
		cfg.Watch.Enabled = false
	}

	theme := styles.NewTheme()
	m := NewModel(theme, cfg)

	// Direct mode loads both files up front so load errors reach stderr
	// instead of an empty screen.
	if args.Mode == cli.ModeDirect {
		if err := m.loadDirect(args.Left, args.Right); err != nil {
			fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
			os.Exit(1)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	_, err = p.Run()
	m.stopWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.RenderError("running diffwin: "+err.Error()))
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// State represents the current application state.
type State int

const (
	StateMenu      State = iota // Main menu
	StatePickLeft               // Picking the left file
	StatePickRight              // Picking the right file
	StateHelp                   // Command reference
	StateDiff                   // Side-by-side diff view
)

// FilesChangedMsg is injected by the watcher when either compared file
// changes on disk.
type FilesChangedMsg struct{}

// Model is the main Bubble Tea model for the application.
type Model struct {
	state State

	theme  *styles.Theme
	config *config.Config

	width  int
	height int

	// Components
	menu      *components.Menu
	picker    *components.FilePicker
	help      *components.Help
	diffView  *components.DiffView
	statusBar *components.StatusBar

	// Compared files
	leftPath  string
	rightPath string
	leftDoc   *document.Document
	rightDoc  *document.Document

	// Directory the picker reopens in
	pickDir string

	// Live reload; active only while the diff view is open
	watcher  *document.Watcher
	watching bool

	// Direct mode exits instead of returning to the menu
	directMode bool
}

// NewModel creates the application model starting at the main menu.
func NewModel(theme *styles.Theme, cfg *config.Config) *Model {
	m := &Model{
		state:     StateMenu,
		theme:     theme,
		config:    cfg,
		pickDir:   ".",
		help:      components.NewHelp(theme),
		statusBar: components.NewStatusBar(theme),
	}
	m.menu = components.NewMenu(theme, "diffwin", m.menuItems())
	m.menu.Hint = "enter select  q quit"
	return m
}

// Main menu entry indices.
const (
	menuSetLeft = iota
	menuSetRight
	menuShowDiff
	menuCommands
	menuQuit
)

// menuItems builds the main menu, marking which files are already set.
func (m *Model) menuItems() []components.MenuItem {
	left := "Set left file"
	if m.leftDoc != nil {
		left += " (set to " + m.leftDoc.Name + ")"
	}
	right := "Set right file"
	if m.rightDoc != nil {
		right += " (set to " + m.rightDoc.Name + ")"
	}
	return []components.MenuItem{
		{Label: left},
		{Label: right},
		{Label: "Show diff"},
		{Label: "Commands"},
		{Label: "Quit"},
	}
}

// loadDirect loads both files for direct invocation and jumps straight
// to the diff view.
func (m *Model) loadDirect(left, right string) error {
	leftDoc, err := document.Load(left, m.config.UI.TabWidth)
	if err != nil {
		return err
	}
	rightDoc, err := document.Load(right, m.config.UI.TabWidth)
	if err != nil {
		return err
	}

	m.leftPath, m.rightPath = left, right
	m.leftDoc, m.rightDoc = leftDoc, rightDoc
	m.directMode = true
	m.enterDiff()
	return nil
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.menu.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		m.statusBar.SetSize(msg.Width)
		if m.picker != nil {
			m.picker.SetSize(msg.Width, msg.Height)
		}
		if m.diffView != nil {
			// One row stays reserved for the status bar.
			m.diffView.SetSize(msg.Width, msg.Height-1)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case components.MenuSelectMsg:
		return m.handleMenuSelect(msg)

	case components.MenuCancelMsg:
		// Backing out of the main menu exits the program.
		return m, tea.Quit

	case components.FilePickedMsg:
		return m.handleFilePicked(msg)

	case components.FilePickCancelMsg:
		m.pickDir = m.picker.Dir()
		m.state = StateMenu
		m.picker = nil
		return m, nil

	case components.DiffCloseMsg:
		m.stopWatcher()
		if m.directMode {
			return m, tea.Quit
		}
		m.state = StateMenu
		m.diffView = nil
		// The compared files stay set for another round.
		m.menu.SetItems(m.menuItems())
		return m, nil

	case FilesChangedMsg:
		m.reloadDocuments()
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the component owning the current state.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopWatcher()
		return m, tea.Quit
	}

	switch m.state {
	case StateMenu:
		menu, cmd := m.menu.Update(msg)
		m.menu = menu
		return m, cmd

	case StatePickLeft, StatePickRight:
		picker, cmd := m.picker.Update(msg)
		m.picker = picker
		return m, cmd

	case StateHelp:
		// Any key returns to the menu.
		m.state = StateMenu
		return m, nil

	case StateDiff:
		dv, cmd := m.diffView.Update(msg)
		m.diffView = dv
		return m, cmd
	}

	return m, nil
}

// handleMenuSelect routes a main menu selection.
func (m *Model) handleMenuSelect(msg components.MenuSelectMsg) (tea.Model, tea.Cmd) {
	switch msg.Index {
	case menuSetLeft:
		m.state = StatePickLeft
		m.openPicker("Pick the left file")
	case menuSetRight:
		m.state = StatePickRight
		m.openPicker("Pick the right file")
	case menuShowDiff:
		if m.leftDoc == nil || m.rightDoc == nil {
			m.menu.SetError("set both files first")
			return m, nil
		}
		m.enterDiff()
	case menuCommands:
		m.state = StateHelp
	case menuQuit:
		return m, tea.Quit
	}
	return m, nil
}

// openPicker opens the file picker in the last browsed directory.
func (m *Model) openPicker(title string) {
	m.picker = components.NewFilePicker(m.theme, title, m.pickDir)
	m.picker.SetSize(m.width, m.height)
}

// handleFilePicked loads a chosen file, surfacing load failures in the
// picker menu instead of crashing out.
func (m *Model) handleFilePicked(msg components.FilePickedMsg) (tea.Model, tea.Cmd) {
	doc, err := document.Load(msg.Path, m.config.UI.TabWidth)
	if err != nil {
		m.picker.SetError(loadErrorText(err))
		return m, nil
	}

	if m.state == StatePickLeft {
		m.leftPath, m.leftDoc = msg.Path, doc
	} else {
		m.rightPath, m.rightDoc = msg.Path, doc
	}

	// Back to the menu with the chosen name in the entry label.
	m.pickDir = m.picker.Dir()
	m.picker = nil
	m.state = StateMenu
	m.menu.SetItems(m.menuItems())
	return m, nil
}

// loadErrorText turns a document load failure into a one-line menu error.
func loadErrorText(err error) string {
	switch {
	case document.IsEmpty(err):
		return "selected file is empty"
	case document.IsNotText(err):
		return "selected file is not printable text"
	default:
		return fmt.Sprintf("cannot read file: %v", err)
	}
}

// =============================================================================
// DIFF VIEW LIFECYCLE
// =============================================================================

// enterDiff opens the diff view over the loaded documents and starts
// the file watcher when live reload is enabled.
func (m *Model) enterDiff() {
	m.diffView = components.NewDiffView(m.theme, m.leftDoc, m.rightDoc,
		m.config.UI.Highlight, m.config.UI.SeparatorGap, m.config.UI.PageOverlap)
	if m.width > 0 {
		m.diffView.SetSize(m.width, m.height-1)
	}
	m.state = StateDiff

	if m.config.Watch.Enabled {
		m.startWatcher()
	}
}

// startWatcher begins watching both compared files.
func (m *Model) startWatcher() {
	debounce := time.Duration(m.config.Watch.DebounceMs) * time.Millisecond
	w, err := document.NewWatcher(debounce, func() {
		programMu.Lock()
		p := programRef
		programMu.Unlock()
		if p != nil {
			p.Send(FilesChangedMsg{})
		}
	}, m.leftPath, m.rightPath)
	if err != nil {
		// Live reload is best effort; the view still works without it.
		return
	}
	w.Watch()
	m.watcher = w
	m.watching = true
}

// stopWatcher tears the watcher down when leaving the diff view.
func (m *Model) stopWatcher() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
	m.watching = false
}

// reloadDocuments re-reads both files after a change on disk. A file
// that became unreadable keeps its last good content on screen.
func (m *Model) reloadDocuments() {
	if m.diffView == nil {
		return
	}
	leftDoc, err := document.Load(m.leftPath, m.config.UI.TabWidth)
	if err != nil {
		return
	}
	rightDoc, err := document.Load(m.rightPath, m.config.UI.TabWidth)
	if err != nil {
		return
	}
	m.leftDoc, m.rightDoc = leftDoc, rightDoc
	m.diffView.SetDocuments(leftDoc, rightDoc)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the current state.
func (m *Model) View() string {
	switch m.state {
	case StateMenu:
		return m.menu.View()
	case StatePickLeft, StatePickRight:
		return m.picker.View()
	case StateHelp:
		return m.help.View()
	case StateDiff:
		m.statusBar.Stats = m.diffView.Stats()
		m.statusBar.Locked = m.diffView.Locked()
		m.statusBar.Active = m.diffView.ActivePane()
		m.statusBar.Highlight = m.diffView.Highlighting()
		m.statusBar.Watching = m.watching
		return m.diffView.View() + "\n" + m.statusBar.View()
	}
	return ""
}
