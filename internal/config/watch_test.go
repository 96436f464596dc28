// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	reloads := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config, err error) {
		if err == nil {
			select {
			case reloads <- cfg:
			default:
			}
		}
	})
	require.NoError(t, err)
	defer w.Close()
	w.Start()

	changed := Default()
	changed.Animation.FPS = 60
	require.NoError(t, SaveTOML(changed, path))

	select {
	case cfg := <-reloads:
		require.Equal(t, 60, cfg.Animation.FPS)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after config write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	reloads := make(chan struct{}, 1)
	w, err := NewWatcher(path, func(*Config, error) {
		select {
		case reloads <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()
	w.Start()

	require.NoError(t, SaveTOML(Default(), filepath.Join(dir, "other.toml")))

	select {
	case <-reloads:
		t.Fatal("sibling file write triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher("/nonexistent-limitbar-dir/config.toml", func(*Config, error) {})
	require.Error(t, err)
}
