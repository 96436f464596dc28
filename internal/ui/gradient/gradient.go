// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gradient provides linear color ramps and the slicing math that
// lets independently painted widgets appear as contiguous windows onto
// one continuous gradient spanning a larger region.
package gradient

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// GRADIENT DEFINITION
// =============================================================================

// Stop is a single color stop on the [0,1] axis of a gradient.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Definition is an ordered sequence of color stops with strictly
// increasing positions. It is immutable once constructed.
type Definition struct {
	stops []Stop
}

// New builds a Definition from the given stops. Stops must be non-empty
// and strictly increasing in position.
func New(stops ...Stop) (Definition, error) {
	if len(stops) == 0 {
		return Definition{}, fmt.Errorf("gradient: no stops")
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Pos <= stops[i-1].Pos {
			return Definition{}, fmt.Errorf(
				"gradient: stop %d position %v not after %v",
				i, stops[i].Pos, stops[i-1].Pos)
		}
	}
	d := Definition{stops: make([]Stop, len(stops))}
	copy(d.stops, stops)
	return d, nil
}

// Must builds a Definition and panics on invalid stops. Intended for
// package-level palette declarations.
func Must(stops ...Stop) Definition {
	d, err := New(stops...)
	if err != nil {
		panic(err)
	}
	return d
}

// Evenly builds a definition from hex colors spread evenly across
// [0,1]. Needs at least two colors.
func Evenly(hexes []string) (Definition, error) {
	if len(hexes) < 2 {
		return Definition{}, fmt.Errorf("gradient: need at least two colors")
	}
	stops := make([]Stop, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Definition{}, fmt.Errorf("gradient: invalid color %q: %w", h, err)
		}
		stops[i] = Stop{Pos: float64(i) / float64(len(hexes)-1), Color: c}
	}
	return New(stops...)
}

// Hex builds a stop from a "#RRGGBB" string, panicking on parse failure.
// Intended for package-level palette declarations.
func Hex(pos float64, hex string) Stop {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Errorf("gradient: bad hex %q: %w", hex, err))
	}
	return Stop{Pos: pos, Color: c}
}

// Stops returns a copy of the definition's stops.
func (d Definition) Stops() []Stop {
	out := make([]Stop, len(d.stops))
	copy(out, d.stops)
	return out
}

// =============================================================================
// SAMPLING
// =============================================================================

// ColorAt samples the gradient at a relative position. Positions at or
// before the first stop yield the first stop's color; at or after the
// last stop, the last stop's color. Between stops the color is a linear
// RGB blend of the two bracketing stops.
func (d Definition) ColorAt(pos float64) colorful.Color {
	stops := d.stops
	if len(stops) == 0 {
		return colorful.Color{}
	}
	if pos <= stops[0].Pos {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if pos >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if pos > stops[i].Pos {
			continue
		}
		prev := stops[i-1]
		span := stops[i].Pos - prev.Pos
		t := (pos - prev.Pos) / span
		return prev.Color.BlendRgb(stops[i].Color, t)
	}
	return last.Color
}

// =============================================================================
// SLICING
// =============================================================================

// Slice derives the two-stop gradient for a sub-region of a larger
// reference frame. The receiver is assumed to span [0, refWidth]; the
// result spans the sub-region [offset, offset+width] of that frame,
// remapped to [0,1]. Painting the sub-region with the result is visually
// indistinguishable from painting it as part of the whole.
//
// Caller contract: offset >= 0, width > 0 and offset+width <= refWidth.
// Out-of-range sampling is not defended against here beyond the endpoint
// clamping ColorAt already performs.
func (d Definition) Slice(offset, width, refWidth float64) Definition {
	return Definition{stops: []Stop{
		{Pos: 0, Color: d.ColorAt(offset / refWidth)},
		{Pos: 1, Color: d.ColorAt((offset + width) / refWidth)},
	}}
}

// Reversed returns the definition with every stop position mirrored
// around 0.5, preserving strictly increasing order.
func (d Definition) Reversed() Definition {
	n := len(d.stops)
	out := make([]Stop, n)
	for i, s := range d.stops {
		out[n-1-i] = Stop{Pos: 1 - s.Pos, Color: s.Color}
	}
	return Definition{stops: out}
}

// =============================================================================
// TERMINAL RAMPS
// =============================================================================

// Ramp samples the gradient into n hex colors, one per terminal cell.
// n <= 0 yields an empty slice; n == 1 yields the start color.
func (d Definition) Ramp(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	if n == 1 {
		out[0] = d.ColorAt(0).Hex()
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = d.ColorAt(float64(i) / float64(n-1)).Hex()
	}
	return out
}
