// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/utune-cli/utune/color"
	"github.com/utune-cli/utune/constant"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Utune + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DefaultSource, "ytdlp", "Default media provider to use.\nType \"utune sources list\" to show available providers")
	register(key.SearchMaxResults, 100, "Number of results to request from the resolver per search")
	register(key.SearchOrder, "relevance", "Search ordering hint.\nAvailable options are: relevance, date, longest, shortest")
	register(key.SearchRequireNonLive, true, "Exclude live broadcasts from search results")
	register(key.SearchSafeForWork, false, "Exclude age-restricted entries from search results")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.QualityProfile, "high", "Named quality profile driving rendition selection.\nType \"utune profiles\" to show the catalog")
	register(key.QualityPreferVideo, false, "Prefer renditions that carry a video stream")
	register(key.QualityVideoProfile, "", "Optional profile name used as a video resolution cap.\nEmpty means no override")
	register(key.QualityContainer, "", "Preferred container extension (e.g. mp4, m4a).\nEmpty means no preference")
	register(key.DownloadsPath, "", "Directory for fetched tracks.\nEmpty means the platform music directory")
	register(key.DownloadsAudioFormat, "mp3", "Audio format the resolver transcodes downloads into")
	register(key.DownloadsAudioQuality, "192", "Target audio bitrate (kbit/s) for transcoded downloads")
	register(key.ResolverJSRuntime, "", "Optional JavaScript runtime name or path handed to the resolver")
	register(key.ResolverRemoteComponents, []string{}, "Remote resolver components (e.g. \"ejs:github\") handed to the resolver")
	register(key.HistorySaveOnPlay, true, "Save history when a track is streamed or downloaded")
	register(key.Player, "mpv", "Media player to use for streaming (e.g., mpv)")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
