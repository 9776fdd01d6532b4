package ytdlp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/log"
	"github.com/utune-cli/utune/source"
)

// searchPrefixes maps the ordering hint to the resolver's search pseudo-URL
// scheme. Unknown orders fall back to relevance.
var searchPrefixes = map[string]string{
	"relevance": "ytsearch",
	"date":      "ytsearchdate",
	"longest":   "ytsearchlong",
	"shortest":  "ytsearchshort",
}

// Search executes a discovery query against the resolver and returns the
// tracks that pass the request's filters. The resolver emits one JSON object
// per line; malformed lines are logged and skipped.
func (s *Source) Search(request source.SearchRequest) ([]*source.Track, error) {
	terms := composeTerms(request)
	if terms == "" {
		return nil, fmt.Errorf("empty search query")
	}

	limit := request.MaxResults
	if limit <= 0 {
		limit = viper.GetInt(key.SearchMaxResults)
	}

	prefix, ok := searchPrefixes[strings.ToLower(request.Order)]
	if !ok {
		prefix = searchPrefixes["relevance"]
	}

	output, err := s.execute(
		fmt.Sprintf("%s%d:%s", prefix, limit, terms),
		"--dump-json",
		"--skip-download",
		"--ignore-errors",
		"--no-warnings",
	)
	if err != nil {
		return nil, err
	}

	var tracks []*source.Track

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64<<10), 16<<20)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry entryPayload
		if err := json.Unmarshal(line, &entry); err != nil {
			log.Warnf("%s: skipping malformed search entry: %s", Name, err)
			continue
		}

		track := entry.toTrack()
		if request.Filters != nil && !request.Filters.Matches(track) {
			continue
		}

		tracks = append(tracks, track)
	}

	return tracks, scanner.Err()
}

// composeTerms joins the non-empty query parts into the resolver search text.
func composeTerms(request source.SearchRequest) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{request.Genre, request.Artist} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if request.Filters != nil {
		if keywords := strings.TrimSpace(request.Filters.Keywords); keywords != "" {
			parts = append(parts, keywords)
		}
	}
	return strings.Join(parts, " ")
}
