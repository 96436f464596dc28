// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the limitbar TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// BUBBLE STYLES
	// ==========================================================================

	BubbleText lipgloss.Style
	BubbleIcon lipgloss.Style

	// ==========================================================================
	// LIMIT ROW STYLES
	// ==========================================================================

	LimitFree    lipgloss.Style
	LimitPremium lipgloss.Style
	LimitLabel   lipgloss.Style

	// ==========================================================================
	// LIST ENTRY STYLES
	// ==========================================================================

	EntryTitle       lipgloss.Style
	EntryDescription lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Bubble
	t.BubbleText = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse)

	t.BubbleIcon = lipgloss.NewStyle().
		Foreground(TextInverse)

	// Limit rows
	t.LimitFree = lipgloss.NewStyle().
		Foreground(LimitFreeFg).
		Background(LimitFreeBg)

	t.LimitPremium = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse)

	t.LimitLabel = lipgloss.NewStyle().
		Bold(true)

	// List entries
	t.EntryTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.EntryDescription = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Footer shortcuts
	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}
