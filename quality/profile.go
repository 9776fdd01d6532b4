// Package quality implements the quality profile catalog and the rendition
// selection policy.
//
// A Profile bundles ordered audio bitrate floors, ordered video requirement
// tiers and a codec preference order. Profiles drive two things: the selector
// expression chains handed to the external resolver before any candidate list
// exists (download path), and the local candidate selection applied to a
// materialized rendition list (streaming path).
package quality

import (
	"strings"

	"github.com/samber/mo"
)

// VideoRequirement is one tier of minimum requirements for a video stream.
// Tiers are ordered inside a profile from most to least demanding.
type VideoRequirement struct {
	MinHeight int
	MinFPS    mo.Option[int]
}

// Profile defines bitrate and resolution targets that drive selector
// expressions and candidate ranking. Profiles are immutable process-lifetime
// constants; construct none at runtime.
type Profile struct {
	Name                 string
	AudioThresholds      []int
	VideoRequirements    []VideoRequirement
	PreferredAudioCodecs []string
}

// DefaultProfileName identifies the profile used when a lookup fails.
const DefaultProfileName = "high"

var defaultAudioCodecs = []string{"opus", "aac"}

var profiles = map[string]Profile{
	"high": {
		Name:            "high",
		AudioThresholds: []int{256, 160, 128},
		VideoRequirements: []VideoRequirement{
			{MinHeight: 1080, MinFPS: mo.Some(60)},
			{MinHeight: 1080},
			{MinHeight: 720, MinFPS: mo.Some(60)},
			{MinHeight: 720},
		},
		PreferredAudioCodecs: defaultAudioCodecs,
	},
	"medium": {
		Name:            "medium",
		AudioThresholds: []int{160, 128},
		VideoRequirements: []VideoRequirement{
			{MinHeight: 720},
			{MinHeight: 480, MinFPS: mo.Some(60)},
			{MinHeight: 480},
		},
		PreferredAudioCodecs: defaultAudioCodecs,
	},
	"data_saving": {
		Name:            "data_saving",
		AudioThresholds: []int{128, 96},
		VideoRequirements: []VideoRequirement{
			{MinHeight: 480},
			{MinHeight: 360},
		},
		PreferredAudioCodecs: defaultAudioCodecs,
	},
}

// Get resolves a profile by name, case-insensitively. Empty or unknown names
// resolve to the default profile; lookup never fails.
func Get(name string) Profile {
	if name == "" {
		name = DefaultProfileName
	}
	if profile, ok := profiles[strings.ToLower(name)]; ok {
		return profile
	}
	return profiles[DefaultProfileName]
}

// Names returns the registered profile names, most demanding first.
func Names() []string {
	return []string{"high", "medium", "data_saving"}
}
