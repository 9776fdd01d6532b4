package ytdlp

import (
	"fmt"

	"github.com/utune-cli/utune/source"
)

// Fetch downloads one track through the resolver, extracting and transcoding
// the audio into the requested format at outputPath. The selector expression
// decides which source rendition the resolver starts from.
func (s *Source) Fetch(track *source.Track, outputPath, selector, audioFormat, audioQuality string) error {
	if track.URL == "" {
		return fmt.Errorf("track %q has no page url", track.ID)
	}
	if selector == "" {
		return fmt.Errorf("empty selector expression")
	}

	arguments := append(s.passthrough(),
		track.URL,
		"-f", selector,
		"--extract-audio",
		"--audio-format", audioFormat,
		"--audio-quality", audioQuality,
		"--output", outputPath,
		"--no-warnings",
	)

	_, err := s.execute(arguments...)
	return err
}
