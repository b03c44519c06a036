// args.go - Command-line argument parsing for diffwin.
//
// diffwin has a deliberately small surface: invoked bare it opens the
// interactive menu, invoked with two paths it opens the diff view
// directly. Everything else is --help/--version plumbing.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"
)

// =============================================================================
// MODES
// =============================================================================

// Mode selects how the program starts.
type Mode int

const (
	// ModeMenu opens the interactive menu (no file arguments).
	ModeMenu Mode = iota
	// ModeDirect opens the diff view on two files given as arguments.
	ModeDirect
	// ModeVersion prints the version and exits.
	ModeVersion
	// ModeHelp prints usage and exits.
	ModeHelp
)

// Args holds the parsed command line.
type Args struct {
	Mode  Mode
	Left  string // First file path (ModeDirect)
	Right string // Second file path (ModeDirect)

	// NoHighlight starts the diff view with matched-line highlighting off
	NoHighlight bool
	// NoWatch disables live reload regardless of config
	NoWatch bool
	// ConfigPath overrides the default config file location
	ConfigPath string
}

// UsageError reports an invalid command line. Main prints usage and
// exits with status 2 when it sees one.
type UsageError struct {
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// =============================================================================
// PARSING
// =============================================================================

// Parse interprets raw arguments (os.Args[1:]) into an Args.
func Parse(raw []string) (*Args, error) {
	args := &Args{Mode: ModeMenu}
	var positional []string

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			i++
			continue
		}

		name, value, hasValue := splitFlag(arg)
		switch name {
		case "h", "help":
			args.Mode = ModeHelp
			return args, nil
		case "v", "version":
			args.Mode = ModeVersion
			return args, nil
		case "no-highlight":
			args.NoHighlight = true
		case "no-watch":
			args.NoWatch = true
		case "config":
			if !hasValue {
				if i+1 >= len(raw) || strings.HasPrefix(raw[i+1], "-") {
					return nil, &UsageError{Message: "--config requires a path"}
				}
				value = raw[i+1]
				i++
			}
			args.ConfigPath = value
		default:
			return nil, &UsageError{Message: fmt.Sprintf("unknown flag: %s", arg)}
		}
		i++
	}

	switch len(positional) {
	case 0:
		// Menu mode; files are picked interactively.
	case 2:
		args.Mode = ModeDirect
		args.Left = positional[0]
		args.Right = positional[1]
	default:
		return nil, &UsageError{
			Message: fmt.Sprintf("expected zero or two file arguments, got %d", len(positional)),
		}
	}

	return args, nil
}

// splitFlag separates "--flag=value" into its parts. The name comes back
// with leading dashes stripped.
func splitFlag(arg string) (name, value string, hasValue bool) {
	name = strings.TrimLeft(arg, "-")
	if idx := strings.Index(name, "="); idx >= 0 {
		return name[:idx], name[idx+1:], true
	}
	return name, "", false
}

// =============================================================================
// USAGE
// =============================================================================

// Usage returns the help text printed for --help and usage errors.
func Usage() string {
	return `diffwin - side-by-side file comparison for the terminal

Usage:
  diffwin                 open the interactive menu
  diffwin FILE1 FILE2     compare two files directly

Flags:
  --no-highlight          start with matched-line highlighting off
  --no-watch              disable live reload of the compared files
  --config PATH           use an alternate config file
  -h, --help              show this help
  -v, --version           show version

Keys in the diff view:
  up/down/pgup/pgdn       scroll
  home/end                jump to top / past the last line
  space                   toggle locked scrolling
  tab                     switch the scrolling pane (unlocked only)
  + / - / =               move / reset the pane separator
  d or h                  toggle matched-line highlighting
  q or esc                back to the menu
`
}
