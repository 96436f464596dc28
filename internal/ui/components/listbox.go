// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

// =============================================================================
// LIST BOX
// =============================================================================

// ListEntry describes one limit comparison in a stacked list: a titled
// row showing the free limit against the doubled premium limit.
type ListEntry struct {
	// Subtitle names the limit ("Cloud sessions", "Pinned rigs", ...).
	Subtitle string
	// Description explains it; may be empty.
	Description string
	// LeftNumber is the free-tier limit. Zero hides the number.
	LeftNumber int
	// RightNumber is the premium limit. Zero hides the number.
	RightNumber int
	// CustomRightText replaces the right number's rendering when set.
	CustomRightText string
}

// ListBox stacks limit rows and paints their premium halves as one
// vertical sweep of the full-height gradient, reversed so the sweep
// runs warm-to-cool down the screen.
type ListBox struct {
	theme   *styles.Theme
	entries []ListEntry
	rows    []*LimitBar
	width   int
}

// NewListBox builds the stacked rows for entries. The list coloring
// needs at least three rows; shorter lists keep their rows' default
// sliced brush until enough rows exist.
func NewListBox(theme *styles.Theme, entries []ListEntry) *ListBox {
	l := &ListBox{theme: theme, entries: entries}
	for _, e := range entries {
		factory := rowTextFactory(e)
		maxLabel := ""
		switch {
		case e.RightNumber != 0:
			maxLabel = factory(e.RightNumber)
		case e.CustomRightText != "":
			// "Unlimited" and friends carry no number at all.
			maxLabel = e.CustomRightText
		}
		minLabel := ""
		if e.LeftNumber != 0 {
			minLabel = factory(e.LeftNumber)
		}
		l.rows = append(l.rows, NewLimitBar(theme, maxLabel, minLabel))
	}
	return l
}

// rowTextFactory returns the entry's custom right text for the premium
// limit and plain digits for everything else.
func rowTextFactory(e ListEntry) TextFactory {
	plain := PlainTextFactory()
	if e.CustomRightText == "" {
		return plain
	}
	return func(n int) string {
		if n == e.RightNumber {
			return e.CustomRightText
		}
		return plain(n)
	}
}

// Rows exposes the stacked limit rows, top to bottom.
func (l *ListBox) Rows() []*LimitBar {
	return l.rows
}

// Resize lays the rows out at the new width and recolors them. The
// coloring contract holds here too: fewer than three rows panic.
func (l *ListBox) Resize(width int) {
	l.width = width
	for _, row := range l.rows {
		row.Resize(0, width, width)
	}
	ColorListRows(l.rows)
}

// View renders the entries with their colored rows.
func (l *ListBox) View() string {
	var sb strings.Builder
	for i, e := range l.entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(l.theme.EntryTitle.Render(e.Subtitle))
		sb.WriteString("\n")
		if e.Description != "" {
			sb.WriteString(l.theme.EntryDescription.Render(e.Description))
			sb.WriteString("\n")
		}
		sb.WriteString(l.rows[i].View())
	}
	return sb.String()
}

// ColorListRows assigns each row a two-stop vertical slice of the
// reversed full-height gradient, positioned by the row's extent within
// the stack, so consecutive rows meet without a color seam. Lists of
// fewer than three rows are a caller bug.
func ColorListRows(rows []*LimitBar) {
	if len(rows) <= 2 {
		panic("components: list coloring needs more than two rows")
	}
	total := 0
	for _, row := range rows {
		total += row.Height()
	}
	ref := styles.FullHeightGradientStops.Reversed()
	top := 0
	for _, row := range rows {
		h := row.Height()
		slice := ref.Slice(float64(top), float64(h), float64(total))
		row.SetColorOverride(&slice)
		top += h
	}
}
