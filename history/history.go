// Package history provides the implementation for tracking and persisting user listening state.
package history

import (
	"time"

	"github.com/metafates/gache"

	"github.com/utune-cli/utune/filesystem"
	"github.com/utune-cli/utune/source"
	"github.com/utune-cli/utune/where"
)

// cacher provides an abstracted, disk-backed registry for playback records.
var cacher = gache.New[map[string]*SavedTrack](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of historical playback records from the persistent store.
func Get() (map[string]*SavedTrack, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedTrack), nil
	}
	return cached, nil
}

// Save persists one playback or download of the resolved link to the history
// registry. Repeats of the same track accumulate the play count while the
// stored rendition follows the latest resolution.
func Save(sourceID string, link *source.StreamingLink, profile string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedTrack(sourceID, link, profile)

	if existing, exists := saved[record.encode()]; exists {
		record.PlayCount = existing.PlayCount
	}
	record.PlayCount++
	record.LastPlayed = time.Now()

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific playback record from the history registry.
func Remove(track *SavedTrack) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, track.encode())
	return cacher.Set(saved)
}
