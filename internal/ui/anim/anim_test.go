// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package anim provides the timing side of widget animations.
package anim

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

func linearConfig(d time.Duration) styles.TransitionConfig {
	return styles.TransitionConfig{Duration: d, Easing: styles.EaseLinear}
}

func TestTimelineValueBeforeStart(t *testing.T) {
	tl := NewTimeline(linearConfig(time.Second))
	if v := tl.Value(time.Now()); v != 0 {
		t.Errorf("Value() before Start = %v, want 0", v)
	}
	if tl.Running() {
		t.Error("timeline should not be running before Start")
	}
}

func TestTimelineProgress(t *testing.T) {
	tl := NewTimeline(linearConfig(time.Second))
	start := time.Unix(100, 0)
	if cmd := tl.Start(start); cmd == nil {
		t.Fatal("Start() should return a tick command")
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"at start", 0, 0},
		{"quarter", 250 * time.Millisecond, 0.25},
		{"half", 500 * time.Millisecond, 0.5},
		{"complete", time.Second, 1},
		{"past the end", 3 * time.Second, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tl.Value(start.Add(tc.elapsed))
			if got != tc.want {
				t.Errorf("Value(+%v) = %v, want %v", tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestTimelineValueMonotonic(t *testing.T) {
	tl := NewTimeline(styles.TransitionBubbleSlide)
	start := time.Unix(100, 0)
	tl.Start(start)

	prev := -1.0
	for ms := 0; ms <= 1200; ms += 16 {
		v := tl.Value(start.Add(time.Duration(ms) * time.Millisecond))
		if v < prev {
			t.Fatalf("Value reversed at %dms: %v < %v", ms, v, prev)
		}
		if v < 0 || v > 1 {
			t.Fatalf("Value out of range at %dms: %v", ms, v)
		}
		prev = v
	}
}

func TestTimelineStartTwiceIsNoop(t *testing.T) {
	tl := NewTimeline(linearConfig(time.Second))
	start := time.Unix(100, 0)
	tl.Start(start)

	if cmd := tl.Start(start.Add(500 * time.Millisecond)); cmd != nil {
		t.Error("second Start() should be a no-op")
	}
	// Origin must be the first start time.
	if v := tl.Value(start.Add(500 * time.Millisecond)); v != 0.5 {
		t.Errorf("Value after double start = %v, want 0.5", v)
	}
}

func TestTimelineScaleDuration(t *testing.T) {
	tl := NewTimeline(linearConfig(time.Second))
	tl.ScaleDuration(0.75)
	if tl.Duration() != 750*time.Millisecond {
		t.Errorf("Duration after scale = %v, want 750ms", tl.Duration())
	}
}

func TestTimelineUpdateIgnoresForeignFrames(t *testing.T) {
	tl := NewTimeline(linearConfig(time.Second))
	start := time.Unix(100, 0)
	tl.Start(start)

	foreign := FrameMsg{ID: uuid.New(), Time: start.Add(time.Millisecond)}
	if cmd := tl.Update(foreign); cmd != nil {
		t.Error("frames with a foreign ID should be dropped")
	}
	if !tl.Running() {
		t.Error("a foreign frame must not stop the timeline")
	}
}

func TestTimelineUpdateFinishes(t *testing.T) {
	tl := NewTimeline(linearConfig(time.Second))
	start := time.Unix(100, 0)
	tl.Start(start)

	// Mid-flight frame keeps the loop alive.
	if cmd := tl.Update(FrameMsg{ID: tl.ID(), Time: start.Add(200 * time.Millisecond)}); cmd == nil {
		t.Error("mid-flight frame should schedule the next tick")
	}

	// Final frame ends it.
	if cmd := tl.Update(FrameMsg{ID: tl.ID(), Time: start.Add(2 * time.Second)}); cmd != nil {
		t.Error("final frame should not schedule another tick")
	}
	if tl.Running() {
		t.Error("timeline should stop running after the final frame")
	}
	if v := tl.Value(start.Add(3 * time.Second)); v != 1 {
		t.Errorf("finished timeline Value = %v, want 1", v)
	}
}
