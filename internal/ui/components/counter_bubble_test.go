// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/limitbar-tui/internal/ui/anim"
	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

// =============================================================================
// TIMELINE PHASES
// =============================================================================

func TestNewTimelinePhasesFitting(t *testing.T) {
	p := NewTimelinePhases(0, deflectionLarge)
	if p.IgnoreDeflection {
		t.Fatal("fitting bubble must keep deflection")
	}
	if p.StepBefore != 0.75 || p.StepAfter != 0.875 {
		t.Errorf("steps = %v/%v, want 0.75/0.875", p.StepBefore, p.StepAfter)
	}
}

func TestNewTimelinePhasesOverflowing(t *testing.T) {
	p := NewTimelinePhases(0.4, deflectionLarge)
	if !p.IgnoreDeflection {
		t.Fatal("overflowing bubble must suppress deflection")
	}
	if p.StepBefore != 1 || p.StepAfter != 1 {
		t.Errorf("steps = %v/%v, want 1/1", p.StepBefore, p.StepAfter)
	}
	for _, v := range []float64{0, 0.5, 0.8, 0.95, 1} {
		if got := p.Rotation(v); got != 0 {
			t.Errorf("Rotation(%v) = %v, want 0", v, got)
		}
	}
}

func TestMoveProgress(t *testing.T) {
	p := NewTimelinePhases(0, deflectionLarge)
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0},
		{0.375, 0.5},
		{0.75, 1},
		{0.9, 1}, // saturated past the slide phase
		{1, 1},
	}
	for _, tt := range tests {
		if got := p.MoveProgress(tt.value); math.Abs(got-tt.want) > geomEps {
			t.Errorf("MoveProgress(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestMoveProgressMonotonic(t *testing.T) {
	p := NewTimelinePhases(0, deflectionLarge)
	prev := -1.0
	for v := 0.0; v <= 1.0; v += 0.01 {
		got := p.MoveProgress(v)
		if got < prev {
			t.Fatalf("MoveProgress(%v) = %v < previous %v", v, got, prev)
		}
		prev = got
	}
}

func TestCounter(t *testing.T) {
	p := NewTimelinePhases(0, deflectionLarge)
	tests := []struct {
		value  float64
		target int
		want   int
	}{
		// Halfway through the run a target of 7 shows 3.
		{0.5, 7, 3},
		{0, 7, 0},
		{0.875, 7, 7},
		{1, 7, 7},
		{0.4375, 7, 3},
		{1, 4000, 4000},
	}
	for _, tt := range tests {
		if got := p.Counter(tt.value, tt.target); got != tt.want {
			t.Errorf("Counter(%v, %d) = %d, want %d", tt.value, tt.target, got, tt.want)
		}
	}
}

func TestRotationEnvelope(t *testing.T) {
	p := NewTimelinePhases(0, deflectionLarge)
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0},
		{0.75, 0}, // wobble has not started
		{0.875, 15},
		{1, 0}, // both ramps saturated, swing cancels
	}
	for _, tt := range tests {
		if got := p.Rotation(tt.value); math.Abs(got-tt.want) > geomEps {
			t.Errorf("Rotation(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestRotationAmplitude(t *testing.T) {
	p := NewTimelinePhases(0, deflectionSmall)
	if got := p.Rotation(0.875); math.Abs(got-10) > geomEps {
		t.Errorf("Rotation(0.875) with small amplitude = %v, want 10", got)
	}
}

func TestEdgeProgress(t *testing.T) {
	p := NewTimelinePhases(0.5, deflectionLarge)
	if got := p.EdgeProgress(0.8); math.Abs(got-0.4) > geomEps {
		t.Errorf("EdgeProgress(0.8) = %v, want 0.4", got)
	}
	p = NewTimelinePhases(0, deflectionLarge)
	if got := p.EdgeProgress(1); got != 0 {
		t.Errorf("EdgeProgress(1) without overflow = %v, want 0", got)
	}
}

// =============================================================================
// COUNTER BUBBLE WIDGET
// =============================================================================

func newTestCounterBubble(current, max, trackWidth int) *CounterBubble {
	c := NewCounterBubble(
		DefaultBubbleConfig(), PlainTextFactory(), styles.NewTheme(), current, max)
	c.SetTrackWidth(trackWidth)
	return c
}

func TestCounterBubbleStartFits(t *testing.T) {
	c := newTestCounterBubble(50, 100, 80)
	cmd := c.Start(time.Now())
	if cmd == nil {
		t.Fatal("Start returned no command")
	}
	if c.phases.IgnoreDeflection {
		t.Error("fitting bubble suppressed deflection")
	}
	if got := c.timeline.Duration(); got != time.Second {
		t.Errorf("Duration() = %v, want 1s", got)
	}
}

func TestCounterBubbleStartOverflow(t *testing.T) {
	// Max counter 100 makes the bubble 9 cells wide; a 10-cell track
	// cannot fit its end position, so the run skips the wobble and
	// shortens to the slide phase.
	c := newTestCounterBubble(100, 100, 10)
	c.Start(time.Now())
	if !c.phases.IgnoreDeflection {
		t.Fatal("overflowing bubble kept deflection")
	}
	if c.phases.BubbleEdge <= 0 || c.phases.BubbleEdge > 1 {
		t.Errorf("BubbleEdge = %v, want in (0, 1]", c.phases.BubbleEdge)
	}
	if got := c.timeline.Duration(); got != 750*time.Millisecond {
		t.Errorf("Duration() = %v, want 750ms", got)
	}
}

func TestCounterBubbleStartOnce(t *testing.T) {
	c := newTestCounterBubble(50, 100, 80)
	now := time.Now()
	if cmd := c.Start(now); cmd == nil {
		t.Fatal("first Start returned no command")
	}
	if cmd := c.Start(now); cmd != nil {
		t.Error("second Start returned a command")
	}
}

func TestCounterBubbleUpdateAppliesFrames(t *testing.T) {
	c := newTestCounterBubble(50, 100, 80)
	start := time.Now()
	c.Start(start)

	// A frame past the counter phase lands the full counter.
	c.Update(anim.FrameMsg{ID: c.timeline.ID(), Time: start.Add(time.Second)})
	if got := c.bubble.Counter(); got != 50 {
		t.Errorf("Counter() after final frame = %d, want 50", got)
	}
}

func TestCounterBubbleRollLandsOnTarget(t *testing.T) {
	c := newTestCounterBubble(50, 100, 80)
	start := time.Now()
	c.Start(start)

	// Drive the run frame by frame at the default rate. The counter
	// phase saturates mid-run with a fractional roll step of exactly
	// zero; the roll must still land on the target, not the value
	// shown one frame earlier.
	step := time.Second / time.Duration(anim.DefaultFPS)
	for elapsed := step; elapsed <= c.timeline.Duration()+step; elapsed += step {
		c.Update(anim.FrameMsg{ID: c.timeline.ID(), Time: start.Add(elapsed)})
	}

	if got := c.bubble.roll.Frame(); got != "50" {
		t.Errorf("roll frame after final frame = %q, want %q", got, "50")
	}
	if view := c.View(); !strings.Contains(view, "50") {
		t.Errorf("final View() does not show the target counter:\n%s", view)
	}
}

func TestCounterBubbleUpdateIgnoresForeignFrames(t *testing.T) {
	c := newTestCounterBubble(50, 100, 80)
	start := time.Now()
	c.Start(start)

	if cmd := c.Update(anim.FrameMsg{ID: uuid.New(), Time: start.Add(time.Second)}); cmd != nil {
		t.Error("foreign frame produced a command")
	}
	if got := c.bubble.Counter(); got != -1 {
		t.Errorf("Counter() after foreign frame = %d, want -1", got)
	}
}

func TestCounterBubbleFrameAtFinish(t *testing.T) {
	c := newTestCounterBubble(50, 100, 80)
	c.Start(time.Now())

	frame := c.Frame(1)
	if frame.Counter != 50 {
		t.Errorf("Counter = %d, want 50", frame.Counter)
	}
	if frame.Scale != 1 {
		t.Errorf("Scale = %v, want 1", frame.Scale)
	}
	if frame.Rotation != 0 {
		t.Errorf("Rotation = %v, want 0", frame.Rotation)
	}

	// Final left edge: half the usable track, offset by half the
	// reserved width plus the left pad.
	want := float64(80-4)*0.5 - 4.5 + 2
	if math.Abs(frame.Left-want) > geomEps {
		t.Errorf("Left = %v, want %v", frame.Left, want)
	}
}

func TestCounterBubbleViewHiddenBeforeReveal(t *testing.T) {
	c := newTestCounterBubble(50, 100, 80)
	if got := c.View(); got != "" {
		t.Errorf("View() before start = %q, want empty", got)
	}
	c.Start(time.Now())
	if got := c.View(); got != "" {
		t.Errorf("View() before first frame = %q, want empty", got)
	}
}

func TestCounterBubbleDeflectionFollowsWidth(t *testing.T) {
	// A phrase factory makes the bubble wider than the rotation limit.
	wide := NewCounterBubble(
		DefaultBubbleConfig(),
		func(n int) string { return "extremely verbose counter text" },
		styles.NewTheme(), 5, 10)
	if wide.deflection != deflectionSmall {
		t.Errorf("wide bubble deflection = %v, want %v", wide.deflection, deflectionSmall)
	}

	narrow := newTestCounterBubble(5, 10, 80)
	if narrow.deflection != deflectionLarge {
		t.Errorf("narrow bubble deflection = %v, want %v", narrow.deflection, deflectionLarge)
	}
}
