// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the limitbar
TUI, built on Bubble Tea and Lip Gloss.

# Components

CounterBubble (counter_bubble.go) - The animated counter bubble: slides
along a track, rolls its counter up, and wobbles on arrival. Timeline
phase derivation lives in TimelinePhases.

Bubble (bubble.go) - The bubble's render state: counter, tail geometry,
measured widths, width observers.

Roll (digits.go) - Split-flap style rolling digit display with cell
width measurement.

LimitBar (limitbar.go) - One free-vs-premium limit row whose right half
is a correctly offset window onto the limit gradient.

ListBox (listbox.go) - Stacked limit rows painted as one vertical
gradient sweep.

Header (header.go) - Title bar with the plan badge.

TextFactory (textfactory.go) - Counter-to-text rendering, plain or
pluralized.

# Animation pattern

Widgets derive every visual parameter from a single normalized progress
value supplied by anim.Timeline. Frames carry a timeline ID; a widget
drops frames whose ID it does not own, so replaced widgets go quiet
without explicit teardown.
*/
package components
