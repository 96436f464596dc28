// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierFree, "FREE"},
		{TierPremium, "PREMIUM"},
		{Tier(99), "UNKNOWN"},
	}
	for _, tc := range tests {
		if got := tc.tier.String(); got != tc.want {
			t.Errorf("Tier(%d).String() = %q, want %q", tc.tier, got, tc.want)
		}
	}
}

func TestNewHeader(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	if h.Title != "limitbar" {
		t.Errorf("Title = %q, want %q", h.Title, "limitbar")
	}
	if h.Tier != TierFree {
		t.Errorf("Tier = %v, want %v", h.Tier, TierFree)
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetWidth(60)
	h.Subtitle = "limits doubled"

	view := h.View()
	if !strings.Contains(view, "limitbar") {
		t.Error("view missing the brand")
	}
	if !strings.Contains(view, "limits doubled") {
		t.Error("view missing the subtitle")
	}
	if !strings.Contains(view, "FREE") {
		t.Error("view missing the tier badge")
	}

	h.SetTier(TierPremium)
	if !strings.Contains(h.View(), "PREMIUM") {
		t.Error("view missing the premium badge")
	}
}
