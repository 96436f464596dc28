// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the limitbar TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/limitbar-tui/internal/ui/gradient"
	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

// =============================================================================
// LIMIT BAR
// =============================================================================

// Horizontal padding inside each half of the bar.
const limitBarTextSkip = 1

// LimitBar is one "limit comparison" row: a left half with a flat fill
// ("Free" plus the old limit) and a right half filled with a slice of
// the limit gradient ("Premium" plus the doubled limit). The right
// half's brush is sliced against the parent's reference width so
// side-by-side widgets read as one sweep; a color override replaces
// that brush when the row is painted as part of a stacked list.
type LimitBar struct {
	theme *styles.Theme

	leftText   string // "Free"
	rightText  string // "Premium"
	leftLabel  string // old limit, may be empty
	rightLabel string // new limit, may be empty

	height int

	offsetX     int
	width       int
	parentWidth int

	override *gradient.Definition

	// Recached eagerly on every geometry or brush change.
	cached []string
}

// NewLimitBar creates a row from preformatted labels. Empty labels
// leave their side of the row without a number.
func NewLimitBar(theme *styles.Theme, maxLabel, minLabel string) *LimitBar {
	return &LimitBar{
		theme:      theme,
		leftText:   "Free",
		rightText:  "Premium",
		leftLabel:  minLabel,
		rightLabel: maxLabel,
		height:     1,
	}
}

// NewLimitBarCounts creates a row from raw limits and a text factory.
// Zero limits render without a number, matching the label constructor.
func NewLimitBarCounts(theme *styles.Theme, max int, factory TextFactory, min int) *LimitBar {
	maxLabel := ""
	if max != 0 {
		maxLabel = factory(max)
	}
	minLabel := ""
	if min != 0 {
		minLabel = factory(min)
	}
	return NewLimitBar(theme, maxLabel, minLabel)
}

// SetColorOverride replaces the right half's gradient slice with a
// vertical brush; nil restores the sliced limit gradient. The cache is
// rebuilt immediately.
func (l *LimitBar) SetColorOverride(g *gradient.Definition) {
	l.override = g
	if l.width > 0 {
		l.recache()
	}
}

// Resize places the row at offsetX within a parent of parentWidth and
// gives it width cells. Recaching is synchronous and eager: the next
// View after a size change already paints the new geometry.
func (l *LimitBar) Resize(offsetX, width, parentWidth int) {
	l.offsetX = offsetX
	l.width = width
	l.parentWidth = parentWidth
	l.recache()
}

// Height returns the row's height in cells.
func (l *LimitBar) Height() int {
	return l.height
}

// View returns the cached render. An unsized row renders nothing.
func (l *LimitBar) View() string {
	return strings.Join(l.cached, "\n")
}

// recache rebuilds the row's painted lines.
func (l *LimitBar) recache() {
	if l.width <= 0 {
		l.cached = nil
		return
	}
	leftWidth := l.width / 2
	rightWidth := l.width - leftWidth

	l.cached = make([]string, l.height)
	for row := 0; row < l.height; row++ {
		left := l.theme.LimitFree.Render(
			halfContent(l.leftText, l.leftLabel, leftWidth))
		right := l.renderRight(row, rightWidth)
		l.cached[row] = left + right
	}
}

// renderRight paints one row of the premium half.
func (l *LimitBar) renderRight(row, rightWidth int) string {
	content := halfContent(l.rightText, l.rightLabel, rightWidth)

	if l.override != nil {
		// Stacked-list coloring: the override is a vertical slice, so
		// each row takes one flat color from it.
		ratio := 0.5
		if l.height > 1 {
			ratio = float64(row) / float64(l.height-1)
		}
		hex := l.override.ColorAt(ratio).Hex()
		return l.theme.LimitPremium.
			Background(lipgloss.Color(hex)).
			Render(content)
	}

	// Slice against the parent so this row continues the sweep the
	// neighboring widgets paint.
	offset := float64(l.offsetX + l.width/2)
	brush := styles.LimitGradientStops.Slice(
		offset, float64(rightWidth), float64(l.parentWidth))
	ramp := brush.Ramp(rightWidth)

	var sb strings.Builder
	col := 0
	for _, r := range content {
		hex := ramp[len(ramp)-1]
		if col < len(ramp) {
			hex = ramp[col]
		}
		sb.WriteString(l.theme.LimitPremium.
			Background(lipgloss.Color(hex)).
			Render(string(r)))
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// halfContent lays out "text ... label" within width cells: text on the
// left, label right-aligned, both inset by the text skip.
func halfContent(text, label string, width int) string {
	left := strings.Repeat(" ", limitBarTextSkip) + text
	right := label
	if right != "" {
		right += strings.Repeat(" ", limitBarTextSkip)
	}
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		// Elide the left text rather than overflow.
		avail := width - runewidth.StringWidth(right) - limitBarTextSkip
		left = strings.Repeat(" ", limitBarTextSkip) +
			runewidth.Truncate(text, maxInt(avail, 0), "…")
		gap = width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
		if gap < 0 {
			gap = 0
		}
	}
	return left + strings.Repeat(" ", gap) + right
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
