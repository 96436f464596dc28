// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the limitbar TUI.

This package defines the color palette, the premium gradient stop sets,
the easing functions, and the lipgloss theme used throughout the
application. All flat colors use Lip Gloss AdaptiveColor for automatic
light/dark terminal detection.

# Color System (colors.go)

Accent, surface and text colors follow the usual adaptive token scheme.
The premium gradient palettes are the exception: they are fixed hex
ramps, because the same sweep is painted piecewise across several
widgets and has to match at every seam.

	ButtonGradientStops     - buttons and the counter bubble
	LimitGradientStops      - the premium half of a limit row
	LockGradientStops       - lock badges (same as button)
	FullHeightGradientStops - vertical sweep across a stacked row list

# Animation System (animations.go)

Easing functions map normalized progress to normalized output.
TransitionBubbleSlide is the entrance animation the counter bubble runs
on (ease-out-circ over one second).

# Theme (theme.go)

Theme detects terminal capabilities via termenv and exposes configured
lipgloss styles for the header, bubble text, limit rows, list entries
and footer shortcuts.
*/
package styles
