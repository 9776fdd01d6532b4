package quality

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"

	"github.com/utune-cli/utune/source"
)

// videoContainer is the container extension treated as carrying video when a
// container override is requested.
const videoContainer = "mp4"

// Request describes one selection call. The override profile, when set, is
// resolved by name only to compute a resolution cap; it never replaces the
// base profile's audio thresholds.
type Request struct {
	Profile              Profile
	PreferVideo          bool
	VideoQualityOverride mo.Option[string]
	PreferredContainer   mo.Option[string]
}

// Select picks the single candidate that best satisfies the request, or
// mo.None when no usable rendition exists. It is a pure function of its
// inputs: candidates are never mutated and evaluation is fully repeatable.
//
// Rules apply in strict priority order: explicit container override, then
// video intent, then audio-only selection. The first rule yielding a match
// wins; empty matches fall through to the next rule.
func Select(candidates []*source.Candidate, request Request) mo.Option[*source.Candidate] {
	if len(candidates) == 0 {
		return mo.None[*source.Candidate]()
	}

	if picked, ok := selectByContainer(candidates, request).Get(); ok {
		return mo.Some(picked)
	}

	if request.PreferVideo {
		if picked, ok := selectVideo(candidates, request).Get(); ok {
			return mo.Some(picked)
		}
		// No video-and-audio-capable rendition exists; video intent alone
		// never fails the selection.
	}

	return selectAudio(candidates, request.Profile)
}

// selectByContainer applies the explicit container override. An empty filter
// result ignores the override entirely.
func selectByContainer(candidates []*source.Candidate, request Request) mo.Option[*source.Candidate] {
	container, ok := request.PreferredContainer.Get()
	if !ok || container == "" {
		return mo.None[*source.Candidate]()
	}

	matching := lo.Filter(candidates, func(c *source.Candidate, _ int) bool {
		return strings.EqualFold(c.Extension, container)
	})
	if len(matching) == 0 {
		return mo.None[*source.Candidate]()
	}

	if strings.EqualFold(container, videoContainer) {
		full := lo.Filter(matching, func(c *source.Candidate, _ int) bool {
			return c.HasVideo() && c.HasAudio()
		})
		if len(full) > 0 {
			return mo.Some(rankVideo(full)[0])
		}
	}

	for _, candidate := range matching {
		if candidate.HasAudio() {
			return mo.Some(candidate)
		}
	}
	return mo.Some(matching[0])
}

// selectVideo walks the active profile's requirement tiers, most demanding
// first, over the video-and-audio-capable candidates.
func selectVideo(candidates []*source.Candidate, request Request) mo.Option[*source.Candidate] {
	capable := lo.Filter(candidates, func(c *source.Candidate, _ int) bool {
		return c.HasVideo() && c.HasAudio()
	})
	if len(capable) == 0 {
		return mo.None[*source.Candidate]()
	}

	active := request.Profile
	overrideName, hasOverride := request.VideoQualityOverride.Get()
	if hasOverride && overrideName != "" {
		active = Get(overrideName)
	}

	heightCap := mo.None[int]()
	if hasOverride && overrideName != "" {
		heightCap = overrideCap(active)
	}

	matched := firstBucket(active.VideoRequirements, capable, func(tier VideoRequirement, c *source.Candidate) bool {
		return meetsTier(tier, c)
	}, func(bucket []*source.Candidate) []*source.Candidate {
		return applyHeightCap(bucket, heightCap)
	})
	if len(matched) > 0 {
		return mo.Some(rankVideo(matched)[0])
	}

	// No tier matched: fall back on the full capable set, ranked best first.
	// A "low" override asks for the worst rendition, "medium" for the middle.
	ranked := rankVideo(capable)
	switch strings.ToLower(overrideName) {
	case "low":
		return mo.Some(ranked[len(ranked)-1])
	case "medium":
		return mo.Some(ranked[len(ranked)/2])
	default:
		return mo.Some(ranked[0])
	}
}

// selectAudio walks the profile's bitrate floors over the audio-capable
// candidates and applies the codec preference to the first non-empty bucket.
func selectAudio(candidates []*source.Candidate, profile Profile) mo.Option[*source.Candidate] {
	capable := lo.Filter(candidates, func(c *source.Candidate, _ int) bool {
		return c.HasAudio()
	})
	if len(capable) == 0 {
		return mo.None[*source.Candidate]()
	}

	matched := firstBucket(profile.AudioThresholds, capable, func(threshold int, c *source.Candidate) bool {
		return c.AverageBitrate.OrElse(0) >= float64(threshold)
	}, nil)
	if len(matched) == 0 {
		matched = capable
	}

	return mo.Some(preferCodecs(matched, profile.PreferredAudioCodecs))
}

// firstBucket implements "first non-empty bucket wins": it walks the ordered
// buckets, filters candidates by the bucket predicate, optionally refines the
// bucket, and returns the first non-empty result. Both the video tier walk
// and the audio threshold walk share this shape.
func firstBucket[B any](
	buckets []B,
	candidates []*source.Candidate,
	match func(B, *source.Candidate) bool,
	refine func([]*source.Candidate) []*source.Candidate,
) []*source.Candidate {
	for _, bucket := range buckets {
		matched := lo.Filter(candidates, func(c *source.Candidate, _ int) bool {
			return match(bucket, c)
		})
		if len(matched) == 0 {
			continue
		}
		if refine != nil {
			matched = refine(matched)
		}
		return matched
	}
	return nil
}

// meetsTier reports whether a candidate satisfies one requirement tier.
// A missing height fails a positive height floor; a missing fps fails a
// positive fps floor, but a tier without an fps floor never inspects fps.
// The asymmetry (height is the primary discriminator) is intentional.
func meetsTier(tier VideoRequirement, c *source.Candidate) bool {
	if tier.MinHeight > 0 && c.Height.OrElse(0) < tier.MinHeight {
		return false
	}
	if fps, ok := tier.MinFPS.Get(); ok && fps > 0 {
		if c.FPS.OrElse(0) < float64(fps) {
			return false
		}
	}
	return true
}

// applyHeightCap drops candidates taller than the cap, unless that would
// empty the bucket, in which case the cap is ignored for this tier.
func applyHeightCap(candidates []*source.Candidate, ceiling mo.Option[int]) []*source.Candidate {
	limit, ok := ceiling.Get()
	if !ok {
		return candidates
	}
	capped := lo.Filter(candidates, func(c *source.Candidate, _ int) bool {
		return c.Height.OrElse(0) <= limit
	})
	if len(capped) == 0 {
		return candidates
	}
	return capped
}

// overrideCap returns the height of the override profile's most demanding
// tier. Renditions taller than what the override ever asks for are "better
// than requested" and get dropped, tier by tier, unless dropping them would
// leave a tier empty.
func overrideCap(profile Profile) mo.Option[int] {
	ceiling := mo.None[int]()
	for _, tier := range profile.VideoRequirements {
		if tier.MinHeight <= 0 {
			continue
		}
		if current, ok := ceiling.Get(); !ok || tier.MinHeight > current {
			ceiling = mo.Some(tier.MinHeight)
		}
	}
	return ceiling
}

// rankVideo returns a copy of candidates ordered by (height desc, total
// bitrate desc). The input slice is never reordered.
func rankVideo(candidates []*source.Candidate) []*source.Candidate {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b *source.Candidate) int {
		if c := compareDesc(float64(a.Height.OrElse(0)), float64(b.Height.OrElse(0))); c != 0 {
			return c
		}
		return compareDesc(a.TotalBitrate.OrElse(0), b.TotalBitrate.OrElse(0))
	})
	return ranked
}

// rankAudio returns a copy of candidates ordered by (average bitrate desc,
// total bitrate desc).
func rankAudio(candidates []*source.Candidate) []*source.Candidate {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b *source.Candidate) int {
		if c := compareDesc(a.AverageBitrate.OrElse(0), b.AverageBitrate.OrElse(0)); c != 0 {
			return c
		}
		return compareDesc(a.TotalBitrate.OrElse(0), b.TotalBitrate.OrElse(0))
	})
	return ranked
}

// preferCodecs ranks the subset best first and returns the first ranked
// candidate whose audio codec starts with a preferred codec name,
// case-insensitively, or the top-ranked candidate when no preference matches.
func preferCodecs(candidates []*source.Candidate, preferred []string) *source.Candidate {
	ranked := rankAudio(candidates)
	for _, codec := range preferred {
		prefix := strings.ToLower(codec)
		for _, candidate := range ranked {
			if strings.HasPrefix(strings.ToLower(candidate.AudioCodec), prefix) {
				return candidate
			}
		}
	}
	return ranked[0]
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
