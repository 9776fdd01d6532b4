// Package cache provides localized filesystem-based caching for transient search results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/utune-cli/utune/filesystem"
	"github.com/utune-cli/utune/where"
)

const TTL = 7 * 24 * time.Hour

func getDir() string {
	dir := filepath.Join(where.Cache(), "search")
	_ = filesystem.API().MkdirAll(dir, os.ModePerm)
	return dir
}

// GenerateKey generates a deterministic SHA-256 hash from a query and provider pair for use as a cache identifier.
func GenerateKey(query, provider string) string {
	sanitized := strings.ToLower(strings.ReplaceAll(query, " ", "")) + provider
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read attempts to retrieve and deserialize a cached object if it exists and has not exceeded its TTL.
func Read(key string, target interface{}) bool {
	path := filepath.Join(getDir(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(content, target) == nil
}

// Write persists a serializable object to the cache using an atomic file swap to ensure data integrity.
func Write(key string, data interface{}) error {
	path := filepath.Join(getDir(), key)
	tmpPath := path + ".tmp"

	content, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(tmpPath, content, 0644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmpPath, path)
}

// CollectGarbage initializes an asynchronous background task to prune expired cache entries.
func CollectGarbage() {
	go func() {
		dir := getDir()
		entries, err := filesystem.API().ReadDir(dir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if time.Since(entry.ModTime()) > TTL {
				_ = filesystem.API().Remove(filepath.Join(dir, entry.Name()))
			}
		}
	}()
}
