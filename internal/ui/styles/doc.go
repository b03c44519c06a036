// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the diffwin TUI.

This package defines the color palette and the Theme struct used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for titles and selections
  - Cyan - Pane captions and key hints
  - Emerald - Matched-line highlighting
  - Amber - The end-of-file marker
  - Rose - Errors surfaced in the menu

## Surface Colors

	Surface    - Main background
	SurfaceDim - Status bar background
	Overlay    - The pane separator and borders

## Text Colors

	TextPrimary   - File content and menu entries
	TextSecondary - Supporting text
	TextMuted     - Hints and scroll markers
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

# Usage Example

	import "github.com/jeranaias/diffwin/internal/ui/styles"

	theme := styles.NewTheme()
	line := theme.MatchedLine.Render(content)
*/
package styles
