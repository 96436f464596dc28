// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"golang.org/x/text/language"
)

func TestPlainTextFactory(t *testing.T) {
	factory := PlainTextFactory()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{4000, "4000"},
		{-3, "-3"},
	}
	for _, tt := range tests {
		if got := factory(tt.in); got != tt.want {
			t.Errorf("PlainTextFactory()(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhraseTextFactory(t *testing.T) {
	factory := PhraseTextFactory(language.English, "chat", "chats")

	tests := []struct {
		in   int
		want string
	}{
		{1, "1 chat"},
		{2, "2 chats"},
		{4000, "4,000 chats"},
	}
	for _, tt := range tests {
		if got := factory(tt.in); got != tt.want {
			t.Errorf("PhraseTextFactory(...)(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
