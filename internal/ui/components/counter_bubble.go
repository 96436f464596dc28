// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the limitbar TUI.
package components

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/limitbar-tui/internal/ui/anim"
	"github.com/jeranaias/limitbar-tui/internal/ui/gradient"
	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
	"github.com/jeranaias/limitbar-tui/internal/util"
)

// =============================================================================
// TIMELINE PHASES
// =============================================================================

// The entrance timeline splits at two fixed points: the slide and scale
// land at stepBeforeDeflection, the counter finishes at
// stepAfterDeflection, and the deflection wobble fills what remains.
const (
	stepBeforeDeflection = 0.75
	stepAfterDeflection  = stepBeforeDeflection + (1-stepBeforeDeflection)/2

	deflectionLarge = 30.0
	deflectionSmall = 20.0

	// Bubbles wider than this rotate with the smaller amplitude so the
	// wobble never overshoots the container.
	bubbleWidthLimit = 26
)

// TimelinePhases derives every render parameter of the entrance
// animation from one eased progress value. It is computed once per
// animation run and never changes mid-flight.
type TimelinePhases struct {
	StepBefore float64
	StepAfter  float64

	// BubbleEdge is the precomputed overflow ratio: 0 when the final
	// position fits the track, up to 1 when the tail must pin to the
	// bubble's trailing edge.
	BubbleEdge float64

	// Deflection is the wobble amplitude in degrees.
	Deflection float64

	// IgnoreDeflection suppresses rotation entirely and compresses the
	// timeline into the pre-deflection segment.
	IgnoreDeflection bool
}

// NewTimelinePhases fixes the phase split for one animation run. A
// non-zero overflow ratio disables deflection: both phase boundaries
// collapse to 1 and the whole run is spent on the slide.
func NewTimelinePhases(bubbleEdge, deflection float64) TimelinePhases {
	p := TimelinePhases{
		StepBefore: stepBeforeDeflection,
		StepAfter:  stepAfterDeflection,
		BubbleEdge: bubbleEdge,
		Deflection: deflection,
	}
	if bubbleEdge != 0 {
		p.IgnoreDeflection = true
		p.StepBefore = 1
		p.StepAfter = 1
	}
	return p
}

// MoveProgress drives the horizontal slide.
func (p TimelinePhases) MoveProgress(value float64) float64 {
	return util.Clamp01(value / p.StepBefore)
}

// CounterProgress drives the digit reveal.
func (p TimelinePhases) CounterProgress(value float64) float64 {
	return util.Clamp01(value / p.StepAfter)
}

// EdgeProgress drives the tail-edge deflection.
func (p TimelinePhases) EdgeProgress(value float64) float64 {
	return value * p.BubbleEdge
}

// Scale drives the entrance grow-in, pivoting at the bubble's
// bottom-center point.
func (p TimelinePhases) Scale(value float64) float64 {
	return util.Clamp01(value / p.StepBefore)
}

// Rotation is the wobble angle in degrees: one ramp rises through
// [StepBefore, 1], a second through [StepAfter, 1], and their weighted
// difference swings the angle up and back to zero.
func (p TimelinePhases) Rotation(value float64) float64 {
	if p.IgnoreDeflection {
		return 0
	}
	rampA := util.Clamp01((value - p.StepBefore) / (1 - p.StepBefore))
	rampB := util.Clamp01((value - p.StepAfter) / (1 - p.StepAfter))
	return p.Deflection * (rampA - rampB)
}

// Counter returns the revealed counter at the given progress.
func (p TimelinePhases) Counter(value float64, target int) int {
	return int(p.CounterProgress(value) * float64(target))
}

// =============================================================================
// COUNTER BUBBLE WIDGET
// =============================================================================

// BubbleFrame is one frame's worth of render parameters.
type BubbleFrame struct {
	Left     float64 // bubble left edge within the track
	Scale    float64
	Rotation float64 // degrees
	Counter  int
	TailEdge float64
}

// CounterBubble is the animated counter bubble: a pill that slides
// along a horizontal track to currentValue/maxValue of the track width,
// rolling its counter up as it goes and deforming its tail when the end
// position crowds the track's right boundary.
type CounterBubble struct {
	theme   *styles.Theme
	bubble  *Bubble
	factory TextFactory

	currentValue int
	maxValue     int

	maxBubbleWidth int
	deflection     float64

	trackWidth int
	padLeft    int
	padRight   int

	transition styles.TransitionConfig
	fps        int

	timeline *anim.Timeline
	phases   TimelinePhases
	started  bool
	now      time.Time

	cachedBrush gradient.Definition
}

// NewCounterBubble builds the widget. currentValue is where the bubble
// stops; maxValue scales the track and sizes the reserved layout space.
// Caller contract: maxValue > 0.
func NewCounterBubble(
	cfg BubbleConfig,
	factory TextFactory,
	theme *styles.Theme,
	currentValue, maxValue int,
) *CounterBubble {
	c := &CounterBubble{
		theme:        theme,
		factory:      factory,
		currentValue: currentValue,
		maxValue:     maxValue,
		padLeft:      2,
		padRight:     2,
		transition:   styles.TransitionBubbleSlide,
		fps:          anim.DefaultFPS,
	}
	c.bubble = NewBubble(cfg, factory, theme)
	c.maxBubbleWidth = c.bubble.CountMaxWidth(maxValue)
	c.resized()
	c.bubble.OnWidthChange(c.resized)
	return c
}

// resized re-derives everything that depends on the bubble's measured
// width. Runs synchronously on every width change.
func (c *CounterBubble) resized() {
	c.deflection = deflectionLarge
	if c.bubble.Width() > bubbleWidthLimit {
		c.deflection = deflectionSmall
	}
}

// SetTransition overrides the entrance duration and easing. Must be
// called before Start.
func (c *CounterBubble) SetTransition(cfg styles.TransitionConfig) {
	c.transition = cfg
}

// SetFPS overrides the animation frame rate. Must be called before
// Start.
func (c *CounterBubble) SetFPS(fps int) {
	c.fps = fps
}

// SetTrackWidth updates the track (parent) width. Safe to call any
// time; the overflow pre-check reads it once at Start.
func (c *CounterBubble) SetTrackWidth(width int) {
	c.trackWidth = width
}

// Height returns the rows the widget occupies.
func (c *CounterBubble) Height() int {
	return c.bubble.Height()
}

// MaxWidth returns the layout space to reserve for the widest counter.
func (c *CounterBubble) MaxWidth() int {
	return c.maxBubbleWidth
}

// Started reports whether the entrance animation has been triggered.
func (c *CounterBubble) Started() bool {
	return c.started
}

// computeLeft projects the bubble's left edge for a track ratio and an
// animation progress.
func (c *CounterBubble) computeLeft(pointRatio, animProgress float64) float64 {
	usable := float64(c.trackWidth - c.padLeft - c.padRight)
	return usable*pointRatio*animProgress -
		float64(c.maxBubbleWidth)/2 +
		float64(c.padLeft)
}

// computeEdge is the track's usable right boundary for the bubble.
func (c *CounterBubble) computeEdge() float64 {
	return float64(c.trackWidth - c.padRight - c.maxBubbleWidth)
}

// checkBubbleEdges computes the overflow ratio of the final position
// past the usable boundary, in units of half the maximum bubble width.
func (c *CounterBubble) checkBubbleEdges() float64 {
	endPoint := float64(c.currentValue) / float64(c.maxValue)
	finish := c.computeLeft(endPoint, 1)
	edge := c.computeEdge()
	if finish >= edge {
		return (finish - edge) / (float64(c.maxBubbleWidth) / 2)
	}
	return 0
}

// Start fires the one-shot Idle -> Animating transition. Call it when
// the hosting view has finished its own entrance. The overflow
// pre-check runs here, once, and its result is frozen for the run; with
// deflection suppressed the run's wall-clock duration shortens to the
// pre-deflection share.
func (c *CounterBubble) Start(now time.Time) tea.Cmd {
	if c.started {
		return nil
	}
	c.started = true

	c.phases = NewTimelinePhases(c.checkBubbleEdges(), c.deflection)
	c.timeline = anim.NewTimeline(c.transition)
	c.timeline.SetFPS(c.fps)
	if c.phases.IgnoreDeflection {
		c.timeline.ScaleDuration(stepBeforeDeflection)
	}
	c.now = now
	return c.timeline.Start(now)
}

// Update consumes animation frames. Frames belonging to other widgets
// pass through untouched.
func (c *CounterBubble) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(anim.FrameMsg)
	if !ok || c.timeline == nil || frame.ID != c.timeline.ID() {
		return nil
	}
	c.now = frame.Time
	c.applyFrame(c.timeline.Value(frame.Time))
	return c.timeline.Update(frame)
}

// applyFrame pushes one progress value into the bubble's render state.
func (c *CounterBubble) applyFrame(value float64) {
	counterProgress := c.phases.CounterProgress(value)
	counter := int(counterProgress * float64(c.currentValue))
	c.bubble.SetCounter(counter)

	// Roll smoothly between consecutive counter values. Once the
	// counter phase saturates the fractional step collapses to zero,
	// so the roll is landed on its target explicitly.
	if counterProgress >= 1 {
		c.bubble.FinishRoll()
	} else {
		_, frac := math.Modf(counterProgress * float64(c.currentValue))
		c.bubble.AdvanceRoll(frac)
	}

	c.bubble.SetTailEdge(c.phases.EdgeProgress(value))
}

// Frame derives the render parameters for a progress value.
func (c *CounterBubble) Frame(value float64) BubbleFrame {
	endPoint := float64(c.currentValue) / float64(c.maxValue)
	left := c.computeLeft(endPoint, c.phases.MoveProgress(value)) -
		(float64(c.maxBubbleWidth)/2)*c.phases.BubbleEdge
	return BubbleFrame{
		Left:     left,
		Scale:    c.phases.Scale(value),
		Rotation: c.phases.Rotation(value),
		Counter:  c.phases.Counter(value, c.currentValue),
		TailEdge: c.bubble.TailEdge(),
	}
}

// View renders the bubble at its current animation position. Nothing is
// painted until the animation has revealed a counter.
func (c *CounterBubble) View() string {
	if c.bubble.Counter() <= 0 || c.timeline == nil {
		return ""
	}

	value := c.timeline.Value(c.now)
	frame := c.Frame(value)

	// The sliced brush keeps the moving bubble reading as a window onto
	// one gradient spanning the whole track.
	if c.timeline.Running() {
		offset := math.Max(frame.Left, 0)
		width := float64(c.bubble.Width())
		ref := float64(c.trackWidth)
		if offset+width > ref {
			offset = ref - width
		}
		c.cachedBrush = styles.ButtonGradientStops.Slice(offset, width, ref)
	}

	rendered := c.bubble.Render(c.cachedBrush)
	lines := strings.Split(rendered, "\n")

	// Growth pivots at the bottom-center: scale reveals rows upward.
	keep := int(math.Ceil(frame.Scale * float64(len(lines))))
	if keep < 1 {
		keep = 1
	}
	if keep < len(lines) {
		lines = lines[len(lines)-keep:]
	}

	// The wobble leans the whole bubble a column or two around its
	// bottom-center pivot.
	lean := int(math.Round(frame.Rotation / deflectionLarge * 2))
	indent := int(frame.Left) + lean
	if indent < 0 {
		indent = 0
	}

	pad := strings.Repeat(" ", indent)
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
