// Package download persists tracks to disk through the external resolver.
package download

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/utune-cli/utune/filesystem"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/log"
	"github.com/utune-cli/utune/quality"
	"github.com/utune-cli/utune/source"
	"github.com/utune-cli/utune/where"
)

// Fetcher retrieves one track into outputPath. The provider's resolver
// satisfies this; tests substitute a fake.
type Fetcher interface {
	Fetch(track *source.Track, outputPath, selector, audioFormat, audioQuality string) error
}

// Manager drives batch downloads: it owns the target directory, the audio
// transcoding parameters and the quality profile the selector chain is built
// from.
type Manager struct {
	Fetcher      Fetcher
	Dir          string
	AudioFormat  string
	AudioQuality string
	Profile      quality.Profile
}

// NewManager builds a Manager from configuration around the given fetcher.
func NewManager(fetcher Fetcher) *Manager {
	dir := viper.GetString(key.DownloadsPath)
	if dir == "" {
		dir = where.Downloads()
	}

	return &Manager{
		Fetcher:      fetcher,
		Dir:          dir,
		AudioFormat:  viper.GetString(key.DownloadsAudioFormat),
		AudioQuality: viper.GetString(key.DownloadsAudioQuality),
		Profile:      quality.Get(viper.GetString(key.QualityProfile)),
	}
}

// Download fetches each track into the manager's directory and returns the
// saved paths. Tracks without a page URL are logged and skipped; a fetch
// failure aborts the batch but reports the paths saved so far.
func (m *Manager) Download(tracks []*source.Track) ([]string, error) {
	if err := filesystem.API().MkdirAll(m.Dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create downloads directory: %w", err)
	}

	selector := quality.BuildAudioSelector(m.Profile)

	var paths []string
	for _, track := range tracks {
		if track.URL == "" {
			log.Warnf("track %q has no page url, skipping", track.Title)
			continue
		}

		path := filepath.Join(m.Dir, track.Filename(m.AudioFormat))
		if err := m.Fetcher.Fetch(track, path, selector, m.AudioFormat, m.AudioQuality); err != nil {
			return paths, fmt.Errorf("download %q: %w", track.Title, err)
		}

		log.Infof("saved %q to %s", track.Title, path)
		paths = append(paths, path)
	}

	return paths, nil
}
