// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package anim provides the timing side of widget animations: a
// fixed-duration eased progress source and its Bubble Tea tick plumbing.
// Visual state derivation stays in the widgets; this package only maps
// wall-clock time to normalized eased progress.
package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
	"github.com/jeranaias/limitbar-tui/internal/util"
)

// DefaultFPS is the frame rate animations tick at.
const DefaultFPS = 30

// FrameMsg is emitted once per animation frame. The ID scopes the frame
// to one Timeline instance: frames from a superseded or destroyed
// timeline carry a stale ID and are dropped by Update, so a torn-down
// widget simply stops receiving ticks.
type FrameMsg struct {
	ID   uuid.UUID
	Time time.Time
}

// Timeline is a one-shot, fixed-duration eased progress source.
// Start it once; each frame, Value maps elapsed wall-clock time through
// the easing function into [0,1]. There is no way back to idle.
type Timeline struct {
	id       uuid.UUID
	duration time.Duration
	easing   styles.EasingFunc
	fps      int

	startedAt time.Time
	running   bool
}

// NewTimeline creates a timeline from a transition configuration.
func NewTimeline(cfg styles.TransitionConfig) *Timeline {
	return &Timeline{
		id:       uuid.New(),
		duration: cfg.Duration,
		easing:   cfg.Easing,
		fps:      DefaultFPS,
	}
}

// SetFPS overrides the frame rate. Values below 1 keep the default.
func (t *Timeline) SetFPS(fps int) {
	if fps >= 1 {
		t.fps = fps
	}
}

// ID returns the instance identity stamped on this timeline's frames.
func (t *Timeline) ID() uuid.UUID {
	return t.id
}

// ScaleDuration multiplies the total duration by factor. Must be called
// before Start.
func (t *Timeline) ScaleDuration(factor float64) {
	t.duration = time.Duration(float64(t.duration) * factor)
}

// Duration returns the total wall-clock duration of the animation.
func (t *Timeline) Duration() time.Duration {
	return t.duration
}

// Running reports whether the timeline has started and not yet finished.
func (t *Timeline) Running() bool {
	return t.running
}

// Start begins the animation at now and returns the command producing
// the first frame. Starting an already-running timeline is a no-op.
func (t *Timeline) Start(now time.Time) tea.Cmd {
	if t.running {
		return nil
	}
	t.startedAt = now
	t.running = true
	return t.tick()
}

// Value returns the eased progress at now, clamped to [0,1]. Before
// Start it is 0; after the duration has elapsed it stays at 1.
func (t *Timeline) Value(now time.Time) float64 {
	if t.startedAt.IsZero() {
		return 0
	}
	if t.duration <= 0 {
		return 1
	}
	raw := util.Clamp01(float64(now.Sub(t.startedAt)) / float64(t.duration))
	return util.Clamp01(t.easing(raw))
}

// Done reports whether the full duration has elapsed at now.
func (t *Timeline) Done(now time.Time) bool {
	return !t.startedAt.IsZero() && now.Sub(t.startedAt) >= t.duration
}

// Update consumes a frame message. Frames for other timelines are
// ignored. While the animation runs it returns the command for the next
// frame; on the final frame it marks the timeline finished and returns
// nil, ending the tick loop.
func (t *Timeline) Update(msg FrameMsg) tea.Cmd {
	if msg.ID != t.id || !t.running {
		return nil
	}
	if t.Done(msg.Time) {
		t.running = false
		return nil
	}
	return t.tick()
}

func (t *Timeline) tick() tea.Cmd {
	interval := time.Second / time.Duration(t.fps)
	id := t.id
	return tea.Tick(interval, func(now time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: now}
	})
}
