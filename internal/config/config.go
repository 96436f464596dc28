// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for limitbar.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - Environment variables (LIMITBAR_*)
//   - ~/.limitbar/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete limitbar configuration.
type Config struct {
	Version string `toml:"version"`

	// Animation tuning for the counter bubble entrance.
	Animation AnimationConfig `toml:"animation"`

	// Bubble geometry and content.
	Bubble BubbleConfig `toml:"bubble"`

	// Palette overrides for the gradient fills.
	Palette PaletteConfig `toml:"palette"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Demo values shown by the standalone binary.
	Demo DemoConfig `toml:"demo"`
}

// AnimationConfig tunes the entrance timeline.
type AnimationConfig struct {
	// DurationMS is the full entrance duration in milliseconds.
	DurationMS int `toml:"duration_ms"`
	// FPS is the animation frame rate.
	FPS int `toml:"fps"`
	// Easing selects the slide curve: "out-circ", "out-cubic", "linear".
	Easing string `toml:"easing"`
}

// BubbleConfig shapes the counter bubble.
type BubbleConfig struct {
	// Icon is the glyph painted left of the counter.
	Icon string `toml:"icon"`
	// WidthLimit is the cell width above which the wobble amplitude drops.
	WidthLimit int `toml:"width_limit"`
	// TailWidth is the tail base width in cells.
	TailWidth int `toml:"tail_width"`
	// Height is the pill height in rows, tail excluded.
	Height int `toml:"height"`
	// Padding is the horizontal interior padding in cells.
	Padding int `toml:"padding"`
	// Premium enables the tail and the gradient fill.
	Premium bool `toml:"premium"`
}

// PaletteConfig overrides the built-in gradient colors. Empty lists
// keep the defaults. Colors are evenly spaced "#RRGGBB" hex stops.
type PaletteConfig struct {
	ButtonGradient     []string `toml:"button_gradient"`
	LimitGradient      []string `toml:"limit_gradient"`
	FullHeightGradient []string `toml:"full_height_gradient"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Theme is the color theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// ShowHelp shows the keybinding help line.
	ShowHelp bool `toml:"show_help"`
}

// DemoConfig holds the limits the demo binary animates.
type DemoConfig struct {
	// Current is the value the bubble stops at.
	Current int `toml:"current"`
	// Max scales the track.
	Max int `toml:"max"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Animation: AnimationConfig{
			DurationMS: 1000,
			FPS:        30,
			Easing:     "out-circ",
		},
		Bubble: BubbleConfig{
			Icon:       "*",
			WidthLimit: 26,
			TailWidth:  3,
			Height:     3,
			Padding:    1,
			Premium:    true,
		},
		UI: UIConfig{
			Theme:    "auto",
			ShowHelp: true,
		},
		Demo: DemoConfig{
			Current: 50,
			Max:     100,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the limitbar configuration directory (~/.limitbar).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".limitbar"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load loads configuration from the config file, falling back to the
// built-in defaults when no file exists. Environment overrides apply
// last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	applyEnvOverrides(cfg)
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file with full
// defaults and validation, bypassing environment overrides.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// applyEnvOverrides applies LIMITBAR_* environment variables on top of
// the loaded configuration.
func applyEnvOverrides(cfg *Config) {
	if theme := os.Getenv("LIMITBAR_THEME"); theme != "" {
		cfg.UI.Theme = theme
	}
	if icon := os.Getenv("LIMITBAR_ICON"); icon != "" {
		cfg.Bubble.Icon = icon
	}
	if fps := os.Getenv("LIMITBAR_FPS"); fps != "" {
		if n, err := strconv.Atoi(fps); err == nil {
			cfg.Animation.FPS = n
		}
	}
	if dur := os.Getenv("LIMITBAR_DURATION_MS"); dur != "" {
		if n, err := strconv.Atoi(dur); err == nil {
			cfg.Animation.DurationMS = n
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validEasings are the slide curves the animation package implements.
var validEasings = map[string]bool{
	"out-circ":  true,
	"out-cubic": true,
	"linear":    true,
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Animation.DurationMS < 50 || c.Animation.DurationMS > 10000 {
		errs = append(errs, ValidationError{
			Field:   "animation.duration_ms",
			Message: fmt.Sprintf("must be 50-10000, got %d", c.Animation.DurationMS),
		})
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 120 {
		errs = append(errs, ValidationError{
			Field:   "animation.fps",
			Message: fmt.Sprintf("must be 1-120, got %d", c.Animation.FPS),
		})
	}
	if !validEasings[strings.ToLower(c.Animation.Easing)] {
		errs = append(errs, ValidationError{
			Field:   "animation.easing",
			Message: fmt.Sprintf("invalid easing '%s', must be one of: out-circ, out-cubic, linear", c.Animation.Easing),
		})
	}

	if c.Bubble.Height < 3 {
		errs = append(errs, ValidationError{
			Field:   "bubble.height",
			Message: fmt.Sprintf("must be at least 3, got %d", c.Bubble.Height),
		})
	}
	if c.Bubble.TailWidth < 1 {
		errs = append(errs, ValidationError{
			Field:   "bubble.tail_width",
			Message: "must be at least 1",
		})
	}
	if c.Bubble.Padding < 0 {
		errs = append(errs, ValidationError{
			Field:   "bubble.padding",
			Message: "must be non-negative",
		})
	}
	if c.Bubble.WidthLimit < 10 {
		errs = append(errs, ValidationError{
			Field:   "bubble.width_limit",
			Message: fmt.Sprintf("must be at least 10, got %d", c.Bubble.WidthLimit),
		})
	}

	errs = append(errs, validatePalette("palette.button_gradient", c.Palette.ButtonGradient)...)
	errs = append(errs, validatePalette("palette.limit_gradient", c.Palette.LimitGradient)...)
	errs = append(errs, validatePalette("palette.full_height_gradient", c.Palette.FullHeightGradient)...)

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.Demo.Max <= 0 {
		errs = append(errs, ValidationError{
			Field:   "demo.max",
			Message: "must be positive",
		})
	}
	if c.Demo.Current < 0 || c.Demo.Current > c.Demo.Max {
		errs = append(errs, ValidationError{
			Field:   "demo.current",
			Message: fmt.Sprintf("must be 0-%d, got %d", c.Demo.Max, c.Demo.Current),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validatePalette checks one gradient override: empty keeps the
// defaults, otherwise at least two well-formed hex colors.
func validatePalette(field string, colors []string) ValidateErrors {
	if len(colors) == 0 {
		return nil
	}
	var errs ValidateErrors
	if len(colors) < 2 {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: "needs at least 2 colors",
		})
	}
	for _, c := range colors {
		if !hexColorRe.MatchString(c) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid color '%s', must be #RRGGBB", c),
			})
		}
	}
	return errs
}

// SetDefaults sets default values for any missing or zero-value
// configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.Animation.DurationMS == 0 {
		c.Animation.DurationMS = defaults.Animation.DurationMS
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = defaults.Animation.FPS
	}
	if c.Animation.Easing == "" {
		c.Animation.Easing = defaults.Animation.Easing
	}

	if c.Bubble.Icon == "" {
		c.Bubble.Icon = defaults.Bubble.Icon
	}
	if c.Bubble.WidthLimit == 0 {
		c.Bubble.WidthLimit = defaults.Bubble.WidthLimit
	}
	if c.Bubble.TailWidth == 0 {
		c.Bubble.TailWidth = defaults.Bubble.TailWidth
	}
	if c.Bubble.Height == 0 {
		c.Bubble.Height = defaults.Bubble.Height
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}

	if c.Demo.Max == 0 {
		c.Demo.Max = defaults.Demo.Max
	}
	if c.Demo.Current == 0 {
		c.Demo.Current = defaults.Demo.Current
	}
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the global configuration instance, loading it on
// first use. A failed load falls back to the defaults.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalCfg = cfg
	}
	return globalCfg
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = nil
}
