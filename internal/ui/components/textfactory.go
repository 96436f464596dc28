// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the limitbar TUI.
package components

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/limitbar-tui/internal/util"
)

// TextFactory turns a counter value into its display string. The
// counter bubble and the limit rows are agnostic about phrasing; they
// only measure and paint whatever the factory returns.
type TextFactory func(int) string

// PlainTextFactory renders the bare number.
func PlainTextFactory() TextFactory {
	return util.IntToString
}

// PhraseTextFactory renders a pluralized phrase such as "1 chat" or
// "4,000 chats", with locale-aware digit grouping.
func PhraseTextFactory(tag language.Tag, singular, plural string) TextFactory {
	p := message.NewPrinter(tag)
	return func(n int) string {
		word := plural
		if n == 1 {
			word = singular
		}
		return p.Sprintf("%d %s", n, word)
	}
}
