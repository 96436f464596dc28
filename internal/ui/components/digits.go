// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the limitbar TUI.
package components

import (
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/limitbar-tui/internal/util"
)

// =============================================================================
// ROLLING DIGIT REVEAL
// =============================================================================

// Roll animates a counter string by rolling each changed digit through
// the intermediate glyphs, the way split-flap displays tick over. It
// also owns text measurement: widths are cell counts from go-runewidth,
// and a width-change callback lets the hosting widget resize eagerly.
type Roll struct {
	text     string
	prevText string

	progress float64 // roll position between prevText and text

	width    int // measured cells of text
	maxWidth int // high-water mark across all SetText calls

	widthChanged func()
}

// NewRoll creates a rolling-digit display. widthChanged may be nil.
func NewRoll(widthChanged func()) *Roll {
	return &Roll{widthChanged: widthChanged}
}

// SetText records a new target string. The previous target becomes the
// roll origin and the roll restarts. Fires the width-change callback
// when the measured cell width differs.
func (r *Roll) SetText(text string) {
	if text == r.text {
		return
	}
	r.prevText = r.text
	r.text = text
	r.progress = 0

	w := runewidth.StringWidth(text)
	if w > r.maxWidth {
		r.maxWidth = w
	}
	if w != r.width {
		r.width = w
		if r.widthChanged != nil {
			r.widthChanged()
		}
	}
}

// Advance moves the roll toward the current target. progress is clamped
// to [0,1]; 1 lands every glyph on the target.
func (r *Roll) Advance(progress float64) {
	r.progress = util.Clamp01(progress)
}

// FinishAnimating lands the roll on its target immediately.
func (r *Roll) FinishAnimating() {
	r.progress = 1
}

// Width returns the current target's width in cells.
func (r *Roll) Width() int {
	return r.width
}

// MaxWidth returns the widest target seen so far, in cells.
func (r *Roll) MaxWidth() int {
	return r.maxWidth
}

// Frame returns the string to paint this frame: target glyphs where the
// roll has landed, intermediate digits where it is still in motion.
func (r *Roll) Frame() string {
	if r.progress >= 1 || r.prevText == "" {
		return r.text
	}

	from := []rune(r.prevText)
	to := []rune(r.text)

	// Right-align the shorter string: counters grow on the left.
	out := make([]rune, len(to))
	pad := len(to) - len(from)
	for i := range to {
		j := i - pad
		var old rune
		if j >= 0 && j < len(from) {
			old = from[j]
		}
		out[i] = rollRune(old, to[i], r.progress)
	}
	return string(out)
}

// rollRune interpolates a single glyph. Digit pairs roll numerically
// through the glyphs between them; anything else flips halfway.
func rollRune(from, to rune, progress float64) rune {
	if from == to {
		return to
	}
	if from >= '0' && from <= '9' && to >= '0' && to <= '9' {
		step := util.Lerp(float64(from-'0'), float64(to-'0'), progress)
		return '0' + rune(int(step+0.5))
	}
	if progress < 0.5 && from != 0 {
		return from
	}
	return to
}

// MaxTextWidth measures the widest rendering the factory produces for
// counters up to maxCounter. Used to reserve layout space before any
// animation runs.
func MaxTextWidth(factory TextFactory, maxCounter int) int {
	scratch := NewRoll(nil)
	scratch.SetText(factory(0))
	scratch.SetText(factory(maxCounter))
	scratch.FinishAnimating()
	return scratch.MaxWidth()
}
