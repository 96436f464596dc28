// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the limitbar TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/limitbar-tui/internal/ui/gradient"
	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
	"github.com/jeranaias/limitbar-tui/internal/util"
)

// =============================================================================
// BUBBLE CONFIGURATION
// =============================================================================

// Corner cells the tail may never overlap.
const bubbleCornerRadius = 1.0

// BubbleConfig is the immutable per-bubble setup.
type BubbleConfig struct {
	Icon            string // glyph painted left of the counter
	TailWidth       int    // tail base width in cells
	TailHeight      int    // rows below the pill reserved for the tail
	Height          int    // pill interior rows (excludes tail)
	Padding         int    // horizontal interior padding in cells
	PremiumPossible bool   // false: no tail, flat fill
}

// DefaultBubbleConfig returns the standard counter bubble setup.
func DefaultBubbleConfig() BubbleConfig {
	return BubbleConfig{
		Icon:            "*",
		TailWidth:       3,
		TailHeight:      1,
		Height:          3,
		Padding:         1,
		PremiumPossible: true,
	}
}

// =============================================================================
// BUBBLE
// =============================================================================

// Bubble owns the counter bubble's render state: the revealed counter,
// the tail-edge deflection, and the measured dimensions. It is mutated
// only from animation frames; nothing here is safe for concurrent use.
type Bubble struct {
	cfg     BubbleConfig
	factory TextFactory
	theme   *styles.Theme
	roll    *Roll

	counter  int     // -1 until the first frame sets it
	tailEdge float64 // 0 centered .. 1 pinned at the trailing edge

	observers map[uuid.UUID]func()
}

// NewBubble creates a bubble. The counter starts at -1: nothing renders
// until the animation pushes the first value.
func NewBubble(cfg BubbleConfig, factory TextFactory, theme *styles.Theme) *Bubble {
	b := &Bubble{
		cfg:       cfg,
		factory:   factory,
		theme:     theme,
		counter:   -1,
		observers: make(map[uuid.UUID]func()),
	}
	b.roll = NewRoll(b.notifyWidthChange)
	b.roll.SetText(factory(0))
	b.roll.FinishAnimating()
	return b
}

// Counter returns the currently revealed counter (-1 before reveal).
func (b *Bubble) Counter() int {
	return b.counter
}

// Height returns the bubble's total rows, tail included.
func (b *Bubble) Height() int {
	return b.cfg.Height + b.cfg.TailHeight
}

// filledWidth is the fixed part of the width: padding, icon, separator.
func (b *Bubble) filledWidth() int {
	return b.cfg.Padding + runewidth.StringWidth(b.cfg.Icon) + 1 + b.cfg.Padding
}

// Width returns the bubble's current cell width.
func (b *Bubble) Width() int {
	return b.filledWidth() + b.roll.Width() + 2 // interior plus border columns
}

// CountMaxWidth returns the width the bubble reaches at maxCounter,
// for reserving layout space before the animation runs.
func (b *Bubble) CountMaxWidth(maxCounter int) int {
	return b.filledWidth() + MaxTextWidth(b.factory, maxCounter) + 2
}

// SetCounter updates the revealed counter. The rolling display is only
// touched when the value actually changes, so unchanged frames cost no
// re-measure.
func (b *Bubble) SetCounter(value int) {
	if b.counter == value {
		return
	}
	b.counter = value
	b.roll.SetText(b.factory(value))
}

// SetTailEdge sets the tail deflection. Out-of-range values clamp
// silently; that leniency is part of the contract.
func (b *Bubble) SetTailEdge(edge float64) {
	b.tailEdge = util.Clamp01(edge)
}

// TailEdge returns the clamped tail deflection.
func (b *Bubble) TailEdge() float64 {
	return b.tailEdge
}

// AdvanceRoll moves the digit roll for the current frame.
func (b *Bubble) AdvanceRoll(progress float64) {
	b.roll.Advance(progress)
}

// FinishRoll lands the digit roll on its target immediately.
func (b *Bubble) FinishRoll() {
	b.roll.FinishAnimating()
}

// =============================================================================
// WIDTH CHANGE OBSERVERS
// =============================================================================

// OnWidthChange registers a callback invoked synchronously whenever the
// measured width changes. The returned token removes it.
func (b *Bubble) OnWidthChange(fn func()) uuid.UUID {
	token := uuid.New()
	b.observers[token] = fn
	return token
}

// RemoveWidthObserver unregisters a width-change callback.
func (b *Bubble) RemoveWidthObserver(token uuid.UUID) {
	delete(b.observers, token)
}

func (b *Bubble) notifyWidthChange() {
	for _, fn := range b.observers {
		fn()
	}
}

// =============================================================================
// TAIL GEOMETRY
// =============================================================================

// TailGeometry places the tail under a pill of rectW cells starting at
// rectX, for the bubble's current tail edge. The center slides from the
// midpoint (edge 0) to the trailing edge (edge 1); the right point
// never crosses into the rounded corner — when it would, it collapses
// to max(center, corner boundary), flattening the tail against the
// corner.
func (b *Bubble) TailGeometry(rectX, rectW float64) (left, center, right float64) {
	tailW := float64(b.cfg.TailWidth)
	tailHalf := tailW / 2

	left = rectX + rectW*0.5*(b.tailEdge+1) - tailHalf
	center = left + tailHalf

	maxX := rectX + rectW
	bottomMax := maxX - bubbleCornerRadius
	right = left + tailW
	if right > bottomMax {
		if center > bottomMax {
			right = center
		} else {
			right = bottomMax
		}
	}
	return left, center, right
}

// =============================================================================
// RENDERING
// =============================================================================

// Render paints the bubble with the given brush. A bubble whose counter
// was never set renders nothing. rows < Height() of output never occurs;
// the tail row is blank when premium is not possible.
func (b *Bubble) Render(brush gradient.Definition) string {
	if b.counter < 0 {
		return ""
	}

	width := b.Width()
	inner := width - 2
	label := b.cfg.Icon + " " + b.roll.Frame()
	labelPad := inner - runewidth.StringWidth(label)
	if labelPad < 0 {
		labelPad = 0
	}
	leftPad := b.cfg.Padding
	if leftPad > labelPad {
		leftPad = labelPad
	}
	interior := strings.Repeat(" ", leftPad) +
		label +
		strings.Repeat(" ", labelPad-leftPad)

	ramp := b.fillRamp(brush, width)

	var sb strings.Builder
	sb.WriteString(paintRow("╭"+strings.Repeat("─", inner)+"╮", ramp, b.theme.BubbleText))
	sb.WriteByte('\n')
	for r := 0; r < b.cfg.Height-2; r++ {
		sb.WriteString(paintRow("│"+interior+"│", ramp, b.theme.BubbleText))
		sb.WriteByte('\n')
	}
	sb.WriteString(paintRow("╰"+strings.Repeat("─", inner)+"╯", ramp, b.theme.BubbleText))

	if b.cfg.TailHeight > 0 {
		sb.WriteByte('\n')
		sb.WriteString(b.renderTail(width, ramp))
	}
	return sb.String()
}

// fillRamp samples the brush into one color per cell column. Without
// premium the fill is flat.
func (b *Bubble) fillRamp(brush gradient.Definition, width int) []string {
	if !b.cfg.PremiumPossible {
		flat := make([]string, width)
		for i := range flat {
			flat[i] = styles.ActiveButtonBg.Dark
		}
		return flat
	}
	return brush.Ramp(width)
}

// renderTail paints the tail row: a point at the tail center column,
// colored from the same ramp so the tail reads as part of the fill.
func (b *Bubble) renderTail(width int, ramp []string) string {
	if !b.cfg.PremiumPossible {
		return strings.Repeat(" ", width)
	}
	_, center, _ := b.TailGeometry(0, float64(width))
	col := int(center)
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", col))
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ramp[col])).
		Render("▼"))
	return sb.String()
}

// paintRow renders one row of the pill, one styled cell per column so
// the fill ramps horizontally.
func paintRow(row string, ramp []string, text lipgloss.Style) string {
	var sb strings.Builder
	col := 0
	for _, r := range row {
		hex := ramp[len(ramp)-1]
		if col < len(ramp) {
			hex = ramp[col]
		}
		sb.WriteString(text.
			Background(lipgloss.Color(hex)).
			Render(string(r)))
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
