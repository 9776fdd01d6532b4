// Package player defines a unified abstraction layer for media playback engines.
// The primary implementation hands resolved stream URLs to a detached mpv process.
package player

import (
	"fmt"
	"strings"
)

// Player encapsulates the required capabilities for a media playback backend.
type Player interface {
	// Play starts playback of the given URL with the specified title.
	Play(url string, title string) error

	// IsRunning validates the liveness of the underlying playback process.
	IsRunning() bool

	// Wait returns a channel that is closed when the playback session terminates.
	Wait() <-chan struct{}

	// Close terminates the playback engine and releases all associated system resources.
	Close() error
}

// New returns the playback backend registered under the given name.
func New(name string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mpv":
		return NewMPV(), nil
	default:
		return nil, fmt.Errorf("unknown player %q", name)
	}
}
