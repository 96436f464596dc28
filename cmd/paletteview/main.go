// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package main provides paletteview - prints the limitbar gradients as
// color ramps for checking palette overrides without running the TUI.
package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/jeranaias/limitbar-tui/internal/config"
	"github.com/jeranaias/limitbar-tui/internal/ui/gradient"
	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
	"github.com/jeranaias/limitbar-tui/internal/util"
)

const rampWidth = 48

func main() {
	width := rampWidth
	if len(os.Args) > 1 {
		if _, err := fmt.Sscanf(os.Args[1], "%d", &width); err != nil || width < 2 {
			fmt.Fprintf(os.Stderr, "usage: %s [width]\n", os.Args[0])
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := termenv.NewOutput(os.Stdout)

	printRamp(out, "button", withOverride(styles.ButtonGradientStops, cfg.Palette.ButtonGradient), width)
	printRamp(out, "limit", withOverride(styles.LimitGradientStops, cfg.Palette.LimitGradient), width)
	printRamp(out, "full-height", withOverride(styles.FullHeightGradientStops, cfg.Palette.FullHeightGradient), width)
	printRamp(out, "full-height (reversed)", withOverride(styles.FullHeightGradientStops, cfg.Palette.FullHeightGradient).Reversed(), width)
}

// withOverride swaps in the configured palette when present.
func withOverride(builtin gradient.Definition, colors []string) gradient.Definition {
	if len(colors) == 0 {
		return builtin
	}
	def, err := gradient.Evenly(colors)
	if err != nil {
		return builtin
	}
	return def
}

// printRamp paints one gradient as a row of colored cells followed by
// its stop listing.
func printRamp(out *termenv.Output, name string, def gradient.Definition, width int) {
	fmt.Fprintf(out, "%-22s ", name)
	for _, hex := range def.Ramp(width) {
		fmt.Fprint(out, out.String(" ").Background(out.Color(hex)))
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, "                       ")
	for _, stop := range def.Stops() {
		fmt.Fprintf(out, "%s@%s  ", stop.Color.Hex(), util.FloatToStringPrec(stop.Pos, 2))
	}
	fmt.Fprintln(out)
}
