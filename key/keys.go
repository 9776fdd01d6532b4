// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider Source Identifiers - these keys manage the registration and selection of media providers.
const (
	DefaultSource = "sources.default"
)

// Search Discovery - these keys define the defaults for track discovery queries.
const (
	SearchMaxResults           = "search.max_results"
	SearchOrder                = "search.order"
	SearchRequireNonLive       = "search.require_non_live"
	SearchSafeForWork          = "search.safe_for_work"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Quality Policy - these keys select the named quality profile and the rendition intent.
const (
	QualityProfile      = "quality.profile"
	QualityPreferVideo  = "quality.prefer_video"
	QualityVideoProfile = "quality.video_quality"
	QualityContainer    = "quality.container"
)

// Download Persistence - these keys configure where and how fetched tracks are stored.
const (
	DownloadsPath         = "downloads.path"
	DownloadsAudioFormat  = "downloads.audio_format"
	DownloadsAudioQuality = "downloads.audio_quality"
)

// External Resolver - these keys are passed through to the yt-dlp subprocess.
const (
	ResolverJSRuntime        = "resolver.js_runtime"
	ResolverRemoteComponents = "resolver.remote_components"
)

// History Tracking - these keys configure the persistence of playback and download state.
const (
	HistorySaveOnPlay = "history.save_on_play"
)

// Media Playback - these keys maintain the configuration for external video players.
const (
	Player = "player.default"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the terminal-facing application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
