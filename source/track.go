// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"github.com/samber/mo"
	"github.com/utune-cli/utune/util"
)

// Track represents a media entity discovered through a provider search.
type Track struct {
	// Provider-scoped identifier (e.g. the video id).
	ID string `json:"id"`
	// Display title.
	Title string `json:"title"`
	// Channel or artist that published the track.
	Uploader string `json:"uploader"`
	// Total length in seconds, when the provider reports one.
	DurationSeconds mo.Option[int] `json:"duration_seconds"`
	// View count, when the provider reports one.
	ViewCount mo.Option[int64] `json:"view_count"`
	// Upload date in YYYYMMDD form.
	UploadDate string `json:"upload_date"`
	// Canonical page URL used for candidate listing and downloads.
	URL string `json:"url"`
	// Publisher channel URL.
	ChannelURL string `json:"channel_url"`
	// Best available thumbnail URL.
	Thumbnail string `json:"thumbnail"`
	// Free-form description text.
	Description string `json:"description"`
	// Provider-supplied tags.
	Tags []string `json:"tags"`
	// IsLive marks an ongoing live broadcast.
	IsLive bool `json:"is_live"`
	// AgeLimit is the minimum viewer age the provider reports; 0 means
	// unrestricted.
	AgeLimit int `json:"age_limit"`
}

// String returns the display title of the track.
func (t *Track) String() string {
	return t.Title
}

// Filename returns a filesystem-safe stem for the track, suffixed with its id
// so distinct uploads with identical titles never collide.
func (t *Track) Filename(extension string) string {
	base := util.SanitizeFilename(t.Title)
	if base == "" {
		base = util.SanitizeFilename(t.ID)
	}
	if base == "" {
		base = "track"
	}
	return base + "_" + t.ID + "." + extension
}
