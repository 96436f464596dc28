// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the limitbar TUI.
// All flat colors use Lip Gloss AdaptiveColor for automatic light/dark
// detection; the premium gradients are fixed palettes shared by every
// gradient-painted widget.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/limitbar-tui/internal/ui/gradient"
)

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, info, key hints
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors, critical alerts
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// =============================================================================
// LIMIT ROW COLORS
// =============================================================================

// LimitFreeBg - Flat fill for the "Free" half of a limit row
var LimitFreeBg = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#2A2A3C"}

// LimitFreeFg - Text on the "Free" half
var LimitFreeFg = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// ActiveButtonBg - Flat bubble fill when premium is not possible
var ActiveButtonBg = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

// =============================================================================
// PREMIUM GRADIENT PALETTES
// =============================================================================

// Premium gradient base colors. These are fixed (not adaptive): the
// sweep has to look identical on the bubble, the limit rows and the
// badges, whatever the terminal background is.
const (
	premiumButtonBg1 = "#6B93FF" // blue
	premiumButtonBg2 = "#976FFF" // violet
	premiumButtonBg3 = "#E46ACE" // pink
	premiumIconBg1   = "#69C8FF" // light blue
	premiumIconBg2   = "#6B93FF" // blue
)

// ButtonGradientStops - The sweep painted across buttons and the
// counter bubble.
var ButtonGradientStops = gradient.Must(
	gradient.Hex(0, premiumButtonBg1),
	gradient.Hex(0.6, premiumButtonBg2),
	gradient.Hex(1, premiumButtonBg3),
)

// LimitGradientStops - The sweep for the premium half of a limit row.
// The long flat head keeps the row readable before the color turns.
var LimitGradientStops = gradient.Must(
	gradient.Hex(0, premiumButtonBg1),
	gradient.Hex(0.25, premiumButtonBg1),
	gradient.Hex(0.85, premiumButtonBg2),
	gradient.Hex(1, premiumButtonBg3),
)

// LockGradientStops - Lock badges share the button sweep.
var LockGradientStops = ButtonGradientStops

// FullHeightGradientStops - The vertical sweep spanning a whole stacked
// list of limit rows.
var FullHeightGradientStops = gradient.Must(
	gradient.Hex(0, premiumIconBg1),
	gradient.Hex(0.28, premiumIconBg2),
	gradient.Hex(0.55, premiumButtonBg2),
	gradient.Hex(1, premiumButtonBg1),
)
