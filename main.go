// limitbar TUI - an animated limit comparison widget for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jeranaias/limitbar-tui/internal/config"
	"github.com/jeranaias/limitbar-tui/internal/ui/components"
	"github.com/jeranaias/limitbar-tui/internal/ui/gradient"
	"github.com/jeranaias/limitbar-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default ~/.limitbar/config.toml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("limitbar %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: limitbar requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyPalette(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())

	watcher := watchConfig(*configPath, p)
	if watcher != nil {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the explicit path if given, the default chain
// otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// watchConfig hot-reloads the configuration into the running program.
// Watch failures are not fatal; the app just runs without reload.
func watchConfig(path string, p *tea.Program) *config.Watcher {
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return nil
		}
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	w, err := config.NewWatcher(path, func(cfg *config.Config, err error) {
		if err == nil {
			p.Send(configReloadedMsg{cfg})
		}
	})
	if err != nil {
		return nil
	}
	w.Start()
	return w
}

// applyPalette installs the config's gradient overrides into the
// shared palette before any widget samples it.
func applyPalette(cfg *config.Config) error {
	overrides := []struct {
		colors []string
		target *gradient.Definition
	}{
		{cfg.Palette.ButtonGradient, &styles.ButtonGradientStops},
		{cfg.Palette.LimitGradient, &styles.LimitGradientStops},
		{cfg.Palette.FullHeightGradient, &styles.FullHeightGradientStops},
	}
	for _, o := range overrides {
		if len(o.colors) == 0 {
			continue
		}
		def, err := gradient.Evenly(o.colors)
		if err != nil {
			return fmt.Errorf("invalid palette override: %w", err)
		}
		*o.target = def
	}
	return nil
}

// transitionFor maps the configured easing onto the slide transition.
func transitionFor(cfg *config.Config) styles.TransitionConfig {
	t := styles.TransitionConfig{
		Duration: time.Duration(cfg.Animation.DurationMS) * time.Millisecond,
		Easing:   styles.EaseOutCirc,
	}
	switch cfg.Animation.Easing {
	case "out-cubic":
		t.Easing = styles.EaseOutCubic
	case "linear":
		t.Easing = styles.EaseLinear
	}
	return t
}

// =============================================================================
// MESSAGES
// =============================================================================

type configReloadedMsg struct {
	cfg *config.Config
}

// =============================================================================
// KEY MAP
// =============================================================================

type keyMap struct {
	Replay  key.Binding
	Premium key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay animation"),
		),
		Premium: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle premium"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Replay, k.Premium, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Replay, k.Premium}, {k.Help, k.Quit}}
}

// =============================================================================
// MODEL
// =============================================================================

type model struct {
	cfg   *config.Config
	theme *styles.Theme
	keys  keyMap
	help  help.Model

	header *components.Header
	row    *components.BubbleRow
	list   *components.ListBox

	premium bool
	width   int
	height  int
	ready   bool
}

func newModel(cfg *config.Config) *model {
	theme := styles.NewTheme()
	m := &model{
		cfg:     cfg,
		theme:   theme,
		keys:    defaultKeyMap(),
		help:    help.New(),
		premium: cfg.Bubble.Premium,
	}
	m.header = components.NewHeader(theme)
	m.header.Subtitle = "double your limits"
	m.rebuild()
	return m
}

// bubbleConfig translates the file configuration into the widget's.
func (m *model) bubbleConfig() components.BubbleConfig {
	c := components.DefaultBubbleConfig()
	c.Icon = m.cfg.Bubble.Icon
	c.TailWidth = m.cfg.Bubble.TailWidth
	c.Height = m.cfg.Bubble.Height
	c.Padding = m.cfg.Bubble.Padding
	c.PremiumPossible = m.premium
	return c
}

// rebuild recreates the animated widgets from the current config. Any
// running animation is abandoned; its stale frames carry a dead
// timeline ID and fall through Update.
func (m *model) rebuild() {
	demo := m.cfg.Demo
	m.row = components.NewBubbleRow(
		m.bubbleConfig(), components.PlainTextFactory(), m.theme,
		demo.Current, demo.Max)
	m.row.Counter().SetTransition(transitionFor(m.cfg))
	m.row.Counter().SetFPS(m.cfg.Animation.FPS)

	m.list = components.NewListBox(m.theme, demoEntries())

	tier := components.TierFree
	if m.premium {
		tier = components.TierPremium
	}
	m.header.SetTier(tier)

	if m.ready {
		m.layout()
	}
}

// layout re-derives widget geometry from the window size. Gradient
// slices are recomputed inside the widgets' Resize paths, so a resize
// mid-animation stays seamless.
func (m *model) layout() {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	m.header.SetWidth(m.width - 2)
	m.row.Resize(inner)
	m.list.Resize(inner)
}

func demoEntries() []components.ListEntry {
	return []components.ListEntry{
		{Subtitle: "Cloud sessions", Description: "Concurrent remote rig sessions", LeftNumber: 5, RightNumber: 10},
		{Subtitle: "Pinned rigs", Description: "Rigs kept on the dashboard", LeftNumber: 5, RightNumber: 10},
		{Subtitle: "Saved layouts", Description: "Stored pane arrangements", LeftNumber: 10, RightNumber: 20},
		{Subtitle: "History", Description: "Days of command history", LeftNumber: 30, RightNumber: 0, CustomRightText: "Unlimited"},
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if !m.ready {
			m.ready = true
			return m, m.row.Start(time.Now())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Replay):
			m.rebuild()
			return m, m.row.Start(time.Now())
		case key.Matches(msg, m.keys.Premium):
			m.premium = !m.premium
			m.rebuild()
			return m, m.row.Start(time.Now())
		}
		return m, nil

	case configReloadedMsg:
		m.cfg = msg.cfg
		if err := applyPalette(m.cfg); err == nil {
			m.premium = m.cfg.Bubble.Premium
		}
		m.rebuild()
		return m, m.row.Start(time.Now())

	default:
		return m, m.row.Update(msg)
	}
}

// View implements tea.Model.
func (m *model) View() string {
	if !m.ready {
		return ""
	}

	sections := []string{
		m.header.View(),
		m.row.View(),
		"",
		m.list.View(),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	content := lipgloss.NewStyle().Padding(1, 2).Render(body)
	if m.cfg.UI.ShowHelp {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			lipgloss.NewStyle().Padding(0, 2).Render(m.help.View(m.keys)))
	}
	return content
}
