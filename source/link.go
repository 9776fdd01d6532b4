// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import "github.com/samber/mo"

// StreamingLink pairs a track with the resolved rendition chosen for playback.
// It copies the relevant Candidate fields so callers never need the full
// candidate list after selection.
type StreamingLink struct {
	Track          *Track             `json:"track"`
	StreamURL      string             `json:"stream_url"`
	FormatID       string             `json:"format_id"`
	Extension      string             `json:"extension"`
	AverageBitrate mo.Option[float64] `json:"average_bitrate"`
	Height         mo.Option[int]     `json:"height"`
	VideoCodec     string             `json:"video_codec"`
	AudioCodec     string             `json:"audio_codec"`
	Note           string             `json:"note"`
}

// LinkFromCandidate copies the chosen candidate's relevant fields into a
// StreamingLink bound to the given track.
func LinkFromCandidate(track *Track, candidate *Candidate) *StreamingLink {
	return &StreamingLink{
		Track:          track,
		StreamURL:      candidate.URL,
		FormatID:       candidate.FormatID,
		Extension:      candidate.Extension,
		AverageBitrate: candidate.AverageBitrate,
		Height:         candidate.Height,
		VideoCodec:     candidate.VideoCodec,
		AudioCodec:     candidate.AudioCodec,
		Note:           candidate.Note,
	}
}
