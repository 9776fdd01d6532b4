package history

import (
	"fmt"
	"time"

	"github.com/utune-cli/utune/source"
	"github.com/utune-cli/utune/util"
)

// SavedTrack represents a single playback or download entry preserved in the
// user's history, together with the rendition that was chosen for it.
type SavedTrack struct {
	SourceID   string    `json:"source_id"`
	TrackID    string    `json:"track_id"`
	Title      string    `json:"title"`
	Uploader   string    `json:"uploader"`
	URL        string    `json:"url"`
	Profile    string    `json:"profile"`
	FormatID   string    `json:"format_id"`
	Extension  string    `json:"extension"`
	PlayCount  int       `json:"play_count"`
	LastPlayed time.Time `json:"last_played"`
}

func (s *SavedTrack) encode() string {
	return fmt.Sprintf("%s (%s)", s.Title, s.SourceID)
}

func (s *SavedTrack) String() string {
	return fmt.Sprintf("%s : %s", s.Title, util.Quantify(s.PlayCount, "play", "plays"))
}

func newSavedTrack(sourceID string, link *source.StreamingLink, profile string) *SavedTrack {
	return &SavedTrack{
		SourceID:  sourceID,
		TrackID:   link.Track.ID,
		Title:     link.Track.Title,
		Uploader:  link.Track.Uploader,
		URL:       link.Track.URL,
		Profile:   profile,
		FormatID:  link.FormatID,
		Extension: link.Extension,
	}
}
