// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Tier labels the plan the header badge shows.
type Tier int

const (
	TierFree Tier = iota
	TierPremium
)

// String returns the display string for the tier.
func (t Tier) String() string {
	switch t {
	case TierFree:
		return "FREE"
	case TierPremium:
		return "PREMIUM"
	default:
		return "UNKNOWN"
	}
}

// Header is the title bar: the app brand, a subtitle, and the current
// plan badge painted with the button gradient.
type Header struct {
	Title    string
	Subtitle string
	Tier     Tier
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "limitbar",
		Tier:  TierFree,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTier updates the plan badge.
func (h *Header) SetTier(tier Tier) {
	h.Tier = tier
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Cyan)
	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Purple)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	parts := []string{h.tierBadge()}
	if h.Subtitle != "" {
		parts = append([]string{lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Render(h.Subtitle)}, parts...)
	}
	subtitle := strings.Join(parts, " ")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)
	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(subtitle)

	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine)

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width).
		Render(content)
}

// tierBadge paints the plan badge; the premium badge samples the
// button gradient so it matches the bubble's fill.
func (h *Header) tierBadge() string {
	label := "[" + h.Tier.String() + "]"
	if h.Tier != TierPremium {
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render(label)
	}

	ramp := styles.ButtonGradientStops.Ramp(len([]rune(label)))
	var sb strings.Builder
	for i, r := range label {
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ramp[i])).
			Render(string(r)))
	}
	return sb.String()
}
