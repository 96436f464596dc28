// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce window for editor write bursts.
const watchDebounce = 100 * time.Millisecond

// Watcher reloads the configuration when its file changes on disk.
// Editors replace files rather than rewrite them, so the watch is on
// the parent directory and events are filtered by name.
type Watcher struct {
	path     string
	onReload func(*Config, error)

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher creates a watcher for the config file at path. onReload is
// called from the watch goroutine with the freshly loaded config, or
// with a nil config and the load error.
func NewWatcher(path string, onReload func(*Config, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{
		path:     path,
		onReload: onReload,
		fsw:      fsw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns immediately; reloads are delivered
// from a background goroutine until Close.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the watcher and releases the OS watch.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				debounce.Reset(watchDebounce)
			}
			fire = debounce.C
		case <-fire:
			fire = nil
			cfg, err := LoadFromPath(w.path)
			w.onReload(cfg, err)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
