// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

func TestLimitBarUnsizedRendersNothing(t *testing.T) {
	l := NewLimitBar(styles.NewTheme(), "200", "100")
	if got := l.View(); got != "" {
		t.Errorf("View() before Resize = %q, want empty", got)
	}
}

func TestLimitBarResizeIsEager(t *testing.T) {
	l := NewLimitBar(styles.NewTheme(), "200", "100")
	l.Resize(0, 40, 40)
	view := l.View()
	if view == "" {
		t.Fatal("View() after Resize is empty")
	}
	if got := lipgloss.Width(view); got != 40 {
		t.Errorf("rendered width = %d, want 40", got)
	}
	if lines := strings.Split(view, "\n"); len(lines) != l.Height() {
		t.Errorf("rendered %d lines, want %d", len(lines), l.Height())
	}
}

func TestLimitBarLabels(t *testing.T) {
	l := NewLimitBar(styles.NewTheme(), "200", "100")
	l.Resize(0, 60, 60)
	view := l.View()
	for _, want := range []string{"Free", "Premium", "100", "200"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLimitBarCountsHideZero(t *testing.T) {
	l := NewLimitBarCounts(styles.NewTheme(), 200, PlainTextFactory(), 0)
	if l.leftLabel != "" {
		t.Errorf("leftLabel = %q, want empty", l.leftLabel)
	}
	if l.rightLabel != "200" {
		t.Errorf("rightLabel = %q, want %q", l.rightLabel, "200")
	}
}

func TestLimitBarColorOverrideKeepsGeometry(t *testing.T) {
	l := NewLimitBar(styles.NewTheme(), "200", "100")
	l.Resize(0, 40, 40)

	slice := styles.FullHeightGradientStops.Slice(0, 1, 3)
	l.SetColorOverride(&slice)
	if got := lipgloss.Width(l.View()); got != 40 {
		t.Errorf("rendered width with override = %d, want 40", got)
	}

	l.SetColorOverride(nil)
	if got := lipgloss.Width(l.View()); got != 40 {
		t.Errorf("rendered width after clearing override = %d, want 40", got)
	}
}

func TestHalfContentLayout(t *testing.T) {
	tests := []struct {
		text, label string
		width       int
	}{
		{"Free", "100", 20},
		{"Premium", "4,000 chats", 30},
		{"Free", "", 10},
		// Tight fit forces elision but never overflow.
		{"Premium", "200", 8},
	}
	for _, tt := range tests {
		got := halfContent(tt.text, tt.label, tt.width)
		if w := runewidth.StringWidth(got); w != tt.width {
			t.Errorf("halfContent(%q, %q, %d) width = %d, want %d",
				tt.text, tt.label, tt.width, w, tt.width)
		}
		if tt.label != "" && !strings.Contains(got, tt.label) {
			t.Errorf("halfContent(%q, %q, %d) = %q, missing label",
				tt.text, tt.label, tt.width, got)
		}
	}
}
