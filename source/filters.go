// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"strconv"
	"time"

	"github.com/samber/mo"
)

// Filters holds user-facing constraints applied to search results after the
// provider returns them.
type Filters struct {
	MinDuration    mo.Option[int]
	MaxDuration    mo.Option[int]
	MinViews       mo.Option[int64]
	MaxViews       mo.Option[int64]
	UploadAfter    mo.Option[time.Time]
	UploadBefore   mo.Option[time.Time]
	RequireNonLive bool
	SafeForWork    bool
	// Extra keywords merged into the search terms.
	Keywords string
}

// Matches reports whether a track satisfies the live, age, duration, view
// and upload date constraints. Lower bounds fail when the track does not
// report the field; upper bounds pass, mirroring the asymmetry of "at least"
// demands against unknown values.
func (f *Filters) Matches(track *Track) bool {
	if f.RequireNonLive && track.IsLive {
		return false
	}
	if f.SafeForWork && track.AgeLimit >= 18 {
		return false
	}

	duration, hasDuration := track.DurationSeconds.Get()
	if min, ok := f.MinDuration.Get(); ok && (!hasDuration || duration < min) {
		return false
	}
	if max, ok := f.MaxDuration.Get(); ok && hasDuration && duration > max {
		return false
	}

	views, hasViews := track.ViewCount.Get()
	if min, ok := f.MinViews.Get(); ok && (!hasViews || views < min) {
		return false
	}
	if max, ok := f.MaxViews.Get(); ok && hasViews && views > max {
		return false
	}

	if track.UploadDate != "" {
		uploaded, err := strconv.Atoi(track.UploadDate)
		if err == nil {
			if after, ok := f.UploadAfter.Get(); ok && uploaded < toYMD(after) {
				return false
			}
			if before, ok := f.UploadBefore.Get(); ok && uploaded > toYMD(before) {
				return false
			}
		}
	}

	return true
}

func toYMD(value time.Time) int {
	ymd, _ := strconv.Atoi(value.Format("20060102"))
	return ymd
}
