// Package stream turns tracks into playable links by applying the quality
// policy to each track's available renditions.
package stream

import (
	"fmt"

	"github.com/utune-cli/utune/log"
	"github.com/utune-cli/utune/quality"
	"github.com/utune-cli/utune/source"
)

// Streamer resolves playable links through one source under one quality
// request. The request is fixed for the streamer's lifetime so a whole batch
// is judged by the same policy.
type Streamer struct {
	Source  source.Source
	Request quality.Request
}

// Link resolves a single track. It returns nil without an error when no
// usable rendition exists, mirroring the selector's no-match semantics.
func (s *Streamer) Link(track *source.Track) (*source.StreamingLink, error) {
	candidates, err := s.Source.CandidatesOf(track)
	if err != nil {
		return nil, err
	}

	picked, ok := quality.Select(candidates, s.Request).Get()
	if !ok {
		return nil, nil
	}

	return source.LinkFromCandidate(track, picked), nil
}

// Links resolves one playable link per track. Tracks that fail to list
// candidates or have no usable rendition are logged and skipped, so a batch
// never aborts on a single miss.
func (s *Streamer) Links(tracks []*source.Track) []*source.StreamingLink {
	links := make([]*source.StreamingLink, 0, len(tracks))
	for _, track := range tracks {
		link, err := s.Link(track)
		if err != nil {
			log.Warnf("resolving %q: %s", track.Title, err)
			continue
		}
		if link == nil {
			log.Warnf("no usable rendition for %q, skipping", track.Title)
			continue
		}
		links = append(links, link)
	}
	return links
}

// First returns the first resolvable link among the tracks, in order. It
// fails only when every track misses.
func (s *Streamer) First(tracks []*source.Track) (*source.StreamingLink, error) {
	for _, track := range tracks {
		link, err := s.Link(track)
		if err != nil {
			log.Warnf("resolving %q: %s", track.Title, err)
			continue
		}
		if link != nil {
			return link, nil
		}
	}
	return nil, fmt.Errorf("no usable rendition among %d tracks", len(tracks))
}
