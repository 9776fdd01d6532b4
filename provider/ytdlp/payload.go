package ytdlp

import (
	"strconv"
	"strings"

	"github.com/samber/mo"

	"github.com/utune-cli/utune/source"
)

// looseNumber decodes a numeric field the resolver sometimes emits as null,
// a quoted string, or junk. Anything that does not parse cleanly is treated
// as absent rather than failing the whole entry.
type looseNumber struct {
	value mo.Option[float64]
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	n.value = mo.Some(parsed)
	return nil
}

// entryPayload mirrors the subset of the resolver's JSON entry this package
// consumes.
type entryPayload struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Uploader    string          `json:"uploader"`
	Channel     string          `json:"channel"`
	Duration    looseNumber     `json:"duration"`
	ViewCount   looseNumber     `json:"view_count"`
	UploadDate  string          `json:"upload_date"`
	WebpageURL  string          `json:"webpage_url"`
	OriginalURL string          `json:"original_url"`
	ChannelURL  string          `json:"channel_url"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	IsLive      bool            `json:"is_live"`
	AgeLimit    int             `json:"age_limit"`
	Formats     []formatPayload `json:"formats"`
}

func (e *entryPayload) toTrack() *source.Track {
	track := &source.Track{
		ID:          e.ID,
		Title:       e.Title,
		Uploader:    e.Uploader,
		UploadDate:  e.UploadDate,
		URL:         e.WebpageURL,
		ChannelURL:  e.ChannelURL,
		Thumbnail:   e.Thumbnail,
		Description: e.Description,
		Tags:        e.Tags,
		IsLive:      e.IsLive,
		AgeLimit:    e.AgeLimit,
	}

	if track.Uploader == "" {
		track.Uploader = e.Channel
	}
	if track.URL == "" {
		track.URL = e.OriginalURL
	}
	if duration, ok := e.Duration.value.Get(); ok && duration > 0 {
		track.DurationSeconds = mo.Some(int(duration))
	}
	if views, ok := e.ViewCount.value.Get(); ok && views >= 0 {
		track.ViewCount = mo.Some(int64(views))
	}

	return track
}

// formatPayload mirrors one element of the resolver's formats array, or the
// top-level format fields of a resolved single-format entry.
type formatPayload struct {
	URL        string      `json:"url"`
	Ext        string      `json:"ext"`
	ACodec     string      `json:"acodec"`
	VCodec     string      `json:"vcodec"`
	Height     looseNumber `json:"height"`
	FPS        looseNumber `json:"fps"`
	ABR        looseNumber `json:"abr"`
	TBR        looseNumber `json:"tbr"`
	FormatID   string      `json:"format_id"`
	FormatNote string      `json:"format_note"`
}

func (f *formatPayload) toCandidate() *source.Candidate {
	candidate := &source.Candidate{
		URL:            f.URL,
		Extension:      f.Ext,
		AudioCodec:     codecOrNone(f.ACodec),
		VideoCodec:     codecOrNone(f.VCodec),
		FPS:            f.FPS.value,
		AverageBitrate: f.ABR.value,
		TotalBitrate:   f.TBR.value,
		FormatID:       f.FormatID,
		Note:           f.FormatNote,
	}

	if height, ok := f.Height.value.Get(); ok && height > 0 {
		candidate.Height = mo.Some(int(height))
	}

	return candidate
}

// codecOrNone normalizes the resolver's empty codec field to the explicit
// CodecNone sentinel so Has{Audio,Video} stay trustworthy.
func codecOrNone(codec string) string {
	if codec == "" {
		return source.CodecNone
	}
	return codec
}
