// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the limitbar TUI.
package styles

import (
	"math"
	"time"
)

// =============================================================================
// EASING FUNCTIONS
// =============================================================================

// EasingFunc is a function that maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad - accelerating from zero
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutQuad - acceleration until halfway, then deceleration
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// EaseOutCirc - steep start, long gentle landing. This is the curve the
// bubble slide animation runs on.
func EaseOutCirc(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

// =============================================================================
// TRANSITION EFFECTS
// =============================================================================

// TransitionConfig defines a transition animation.
type TransitionConfig struct {
	Duration time.Duration
	Easing   EasingFunc
}

// Default transitions
var (
	TransitionFast = TransitionConfig{
		Duration: 150 * time.Millisecond,
		Easing:   EaseOutQuad,
	}
	TransitionNormal = TransitionConfig{
		Duration: 300 * time.Millisecond,
		Easing:   EaseOutCubic,
	}
	TransitionSlow = TransitionConfig{
		Duration: 500 * time.Millisecond,
		Easing:   EaseInOutQuad,
	}

	// TransitionBubbleSlide is the bubble's entrance slide.
	TransitionBubbleSlide = TransitionConfig{
		Duration: 1000 * time.Millisecond,
		Easing:   EaseOutCirc,
	}
)
