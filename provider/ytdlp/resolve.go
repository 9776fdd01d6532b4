package ytdlp

import (
	"encoding/json"
	"fmt"

	"github.com/utune-cli/utune/source"
)

// CandidatesOf lists every rendition the resolver reports for the track's
// page URL. Entries with missing or malformed numeric attributes are kept;
// the absent fields simply stay absent.
func (s *Source) CandidatesOf(track *source.Track) ([]*source.Candidate, error) {
	if track.URL == "" {
		return nil, fmt.Errorf("track %q has no page url", track.ID)
	}

	output, err := s.execute(
		track.URL,
		"--dump-single-json",
		"--skip-download",
		"--no-warnings",
	)
	if err != nil {
		return nil, err
	}

	var entry entryPayload
	if err := json.Unmarshal(output, &entry); err != nil {
		return nil, fmt.Errorf("decode resolver entry: %w", err)
	}

	candidates := make([]*source.Candidate, 0, len(entry.Formats))
	for i := range entry.Formats {
		candidates = append(candidates, entry.Formats[i].toCandidate())
	}

	return candidates, nil
}

// ResolveStream hands the selector expression to the resolver and maps the
// format it settles on into a StreamingLink. The expression is opaque here;
// only the resolver interprets its fallback grammar.
func (s *Source) ResolveStream(track *source.Track, selector string) (*source.StreamingLink, error) {
	if track.URL == "" {
		return nil, fmt.Errorf("track %q has no page url", track.ID)
	}
	if selector == "" {
		return nil, fmt.Errorf("empty selector expression")
	}

	arguments := append(s.passthrough(),
		track.URL,
		"-f", selector,
		"--dump-single-json",
		"--skip-download",
		"--no-warnings",
	)
	output, err := s.execute(arguments...)
	if err != nil {
		return nil, err
	}

	chosen, err := resolvedFormat(output)
	if err != nil {
		return nil, err
	}

	return source.LinkFromCandidate(track, chosen.toCandidate()), nil
}

// resolvedFormat extracts the format the resolver settled on. A combined
// video+audio selection arrives as a requested_formats array; a single
// format is reported through the entry's top-level url and codec fields.
func resolvedFormat(output []byte) (*formatPayload, error) {
	var combined struct {
		RequestedFormats []formatPayload `json:"requested_formats"`
	}
	if err := json.Unmarshal(output, &combined); err != nil {
		return nil, fmt.Errorf("decode resolved entry: %w", err)
	}
	if len(combined.RequestedFormats) > 0 {
		return &combined.RequestedFormats[0], nil
	}

	var single formatPayload
	if err := json.Unmarshal(output, &single); err != nil {
		return nil, fmt.Errorf("decode resolved format: %w", err)
	}
	if single.URL == "" {
		return nil, fmt.Errorf("resolver returned no stream")
	}
	return &single, nil
}
