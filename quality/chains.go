package quality

import (
	"fmt"
	"strings"
)

// The selector expressions below follow the external resolver's grammar:
// `[key>=N]` constrains a stream attribute, `+` requires two simultaneous
// renditions, `/` separates ordered fallbacks. The strings are opaque hints
// for the resolver and are never evaluated locally.

// appendUnique appends value to items unless an identical expression was
// already emitted, preserving priority order. A set would lose the order.
func appendUnique(items []string, seen map[string]struct{}, value string) []string {
	if _, ok := seen[value]; ok {
		return items
	}
	seen[value] = struct{}{}
	return append(items, value)
}

// AudioSelectors returns the ordered audio-only selector chain for the
// profile: one expression per bitrate floor, most selective first, closed by
// the universal fallbacks.
func (p Profile) AudioSelectors() []string {
	var selectors []string
	seen := make(map[string]struct{})

	for _, threshold := range p.AudioThresholds {
		selectors = appendUnique(selectors, seen, fmt.Sprintf("bestaudio[abr>=%d]", threshold))
	}
	for _, fallback := range []string{"bestaudio", "bestaudio/best"} {
		selectors = appendUnique(selectors, seen, fallback)
	}

	return selectors
}

// VideoSelectors returns the ordered video-only selector chain for the
// profile: one expression per requirement tier combining whichever of the
// height and fps floors are set, closed by the universal fallbacks.
func (p Profile) VideoSelectors() []string {
	var selectors []string
	seen := make(map[string]struct{})

	for _, requirement := range p.VideoRequirements {
		selector := "bestvideo"
		if requirement.MinHeight > 0 {
			selector += fmt.Sprintf("[height>=%d]", requirement.MinHeight)
		}
		if fps, ok := requirement.MinFPS.Get(); ok && fps > 0 {
			selector += fmt.Sprintf("[fps>=%d]", fps)
		}
		selectors = appendUnique(selectors, seen, selector)
	}
	for _, fallback := range []string{"bestvideo", "bestvideo+bestaudio/best"} {
		selectors = appendUnique(selectors, seen, fallback)
	}

	return selectors
}

// CombinedSelectors returns the cartesian product of the video and audio
// chains, each pair requiring both renditions at once, deduplicated in
// encounter order and closed by the universal combined fallbacks. If either
// sub-chain is empty only the fallbacks are returned.
func (p Profile) CombinedSelectors() []string {
	var combos []string
	seen := make(map[string]struct{})

	for _, video := range p.VideoSelectors() {
		for _, audio := range p.AudioSelectors() {
			combos = appendUnique(combos, seen, video+"+"+audio)
		}
	}
	for _, fallback := range []string{"bestvideo+bestaudio", "bestvideo+bestaudio/best"} {
		combos = appendUnique(combos, seen, fallback)
	}

	return combos
}

// BuildAudioSelector renders the audio chain as a single ordered-fallback
// expression for the resolver.
func BuildAudioSelector(p Profile) string {
	return strings.Join(p.AudioSelectors(), "/")
}

// BuildVideoAudioSelector renders the combined video+audio chain as a single
// ordered-fallback expression for the resolver.
func BuildVideoAudioSelector(p Profile) string {
	return strings.Join(p.CombinedSelectors(), "/")
}
