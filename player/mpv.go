package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// MPV implements the Player interface as a detached mpv subprocess. No IPC
// channel is opened; the process is observed only through its exit.
type MPV struct {
	cmd    *exec.Cmd
	exited chan struct{} // closed when mpv exits
}

// NewMPV creates a new MPV player instance (does not start playback).
func NewMPV() *MPV {
	return &MPV{
		exited: make(chan struct{}),
	}
}

// Play starts playback of the given URL in a fresh mpv process.
func (m *MPV) Play(rawURL string, title string) error {
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	safeTitle := sanitizeTitle(title)

	// Pass only the title and URL. Do NOT pass --vo, --profile, --hwdec;
	// the user's mpv.conf stays in charge.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--force-media-title=%s", safeTitle),
		fmt.Sprintf("--title=%s", safeTitle), // Some mpv builds only respect --title
		safeURL,
	}

	m.cmd = exec.Command("mpv", args...)

	// Detach from the parent process group so a dying shell never takes the
	// player down with it.
	m.cmd.SysProcAttr = sysProcAttr()

	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	// Reap the process to prevent zombies.
	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	return nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// IsRunning reports whether the mpv process is still alive.
func (m *MPV) IsRunning() bool {
	if m.cmd == nil || m.cmd.Process == nil {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

// Close shuts down the mpv process if it is still running.
func (m *MPV) Close() error {
	if m.cmd == nil || m.cmd.Process == nil {
		return nil
	}

	select {
	case <-m.exited:
		return nil
	default:
	}

	if err := killProcess(m.cmd); err != nil {
		return err
	}

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
	}

	return nil
}

// sanitizeMediaTarget validates that a target is safe to pass to mpv and
// cannot be mistaken for a flag.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	// Treat as local file path
	return filepath.Clean(l), nil
}

// sanitizeTitle strips characters that break mpv's argument handling.
func sanitizeTitle(title string) string {
	t := strings.ReplaceAll(title, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	t = strings.ReplaceAll(t, "\x00", "")
	return strings.TrimSpace(t)
}
