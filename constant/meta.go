// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Utune is the canonical application identifier used for filesystem paths and CLI branding.
	Utune = "utune"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// Resolver is the executable name of the external media resolver invoked
	// for searches, candidate listings, stream resolution and downloads.
	Resolver = "yt-dlp"
)
