// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"strings"

	"github.com/samber/mo"
)

// CodecNone is the sentinel codec value providers use for streams that carry no
// audio or video at all.
const CodecNone = "none"

// Candidate describes one concrete encoded rendition of a track: a specific
// resolution, bitrate, container and codec combination the resolver can serve.
// Numeric fields are optional; an absent value means the provider did not
// report it, which comparisons treat as zero rather than as disqualifying.
type Candidate struct {
	// Direct URL to the stream/file.
	URL string `json:"url"`
	// Container extension (e.g. "mp4", "webm", "m4a").
	Extension string `json:"extension"`
	// Audio codec identifier, or CodecNone for video-only renditions.
	AudioCodec string `json:"audio_codec"`
	// Video codec identifier, or CodecNone for audio-only renditions.
	VideoCodec string `json:"video_codec"`
	// Frame height in pixels.
	Height mo.Option[int] `json:"height"`
	// Frames per second.
	FPS mo.Option[float64] `json:"fps"`
	// Average (audio) bitrate in kbit/s.
	AverageBitrate mo.Option[float64] `json:"average_bitrate"`
	// Total bitrate in kbit/s.
	TotalBitrate mo.Option[float64] `json:"total_bitrate"`
	// Provider-scoped format identifier.
	FormatID string `json:"format_id"`
	// Free-form provider note (e.g. "1080p60 HDR").
	Note string `json:"note"`
}

// HasAudio reports whether the candidate carries an audio stream.
func (c *Candidate) HasAudio() bool {
	return c.AudioCodec != "" && c.AudioCodec != CodecNone
}

// HasVideo reports whether the candidate carries a video stream.
func (c *Candidate) HasVideo() bool {
	return c.VideoCodec != "" && c.VideoCodec != CodecNone
}

// String returns a short human-readable descriptor for display.
func (c *Candidate) String() string {
	var parts []string
	if c.FormatID != "" {
		parts = append(parts, c.FormatID)
	}
	if c.Note != "" {
		parts = append(parts, c.Note)
	}
	if c.Extension != "" {
		parts = append(parts, c.Extension)
	}
	if len(parts) == 0 {
		return c.URL
	}
	return strings.Join(parts, " ")
}
