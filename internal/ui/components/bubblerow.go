// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

// =============================================================================
// BUBBLE ROW
// =============================================================================

// BubbleRow stacks the animated counter bubble above its limit bar, so
// the bubble's track and the bar share one width and the tail points
// into the bar. Start is one-shot; the hosting view calls it once its
// own entrance has finished.
type BubbleRow struct {
	counter *CounterBubble
	bar     *LimitBar
	width   int
}

// NewBubbleRow builds the row. current is where the bubble stops; max
// scales the track and labels the bar's premium half, with max/2 as
// the free half's label.
func NewBubbleRow(
	cfg BubbleConfig,
	factory TextFactory,
	theme *styles.Theme,
	current, max int,
) *BubbleRow {
	return &BubbleRow{
		counter: NewCounterBubble(cfg, factory, theme, current, max),
		bar:     NewLimitBarCounts(theme, max, factory, max/2),
	}
}

// Counter exposes the animated bubble for transition tuning.
func (r *BubbleRow) Counter() *CounterBubble {
	return r.counter
}

// Resize lays the row out at the new width. Eager: brushes are
// recomputed before the next View.
func (r *BubbleRow) Resize(width int) {
	r.width = width
	r.counter.SetTrackWidth(width)
	r.bar.Resize(0, width, width)
}

// Height returns the rows the component occupies.
func (r *BubbleRow) Height() int {
	return r.counter.Height() + r.bar.Height()
}

// Start fires the entrance animation. Subsequent calls are no-ops.
func (r *BubbleRow) Start(now time.Time) tea.Cmd {
	return r.counter.Start(now)
}

// Update forwards animation frames to the bubble.
func (r *BubbleRow) Update(msg tea.Msg) tea.Cmd {
	return r.counter.Update(msg)
}

// View renders the bubble above the bar.
func (r *BubbleRow) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, r.counter.View(), r.bar.View())
}
