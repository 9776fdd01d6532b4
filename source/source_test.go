package source

import (
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCandidate(t *testing.T) {
	Convey("Given renditions with different codec combinations", t, func() {
		full := &Candidate{AudioCodec: "opus", VideoCodec: "vp9", Extension: "webm", FormatID: "248", Note: "1080p"}
		audioOnly := &Candidate{AudioCodec: "mp4a.40.2", VideoCodec: CodecNone, Extension: "m4a"}
		videoOnly := &Candidate{AudioCodec: CodecNone, VideoCodec: "avc1", Extension: "mp4"}
		blank := &Candidate{URL: "https://cdn.example/raw"}

		Convey("Stream presence follows the codec fields", func() {
			So(full.HasAudio(), ShouldBeTrue)
			So(full.HasVideo(), ShouldBeTrue)

			So(audioOnly.HasAudio(), ShouldBeTrue)
			So(audioOnly.HasVideo(), ShouldBeFalse)

			So(videoOnly.HasAudio(), ShouldBeFalse)
			So(videoOnly.HasVideo(), ShouldBeTrue)
		})

		Convey("An empty codec counts the same as the none sentinel", func() {
			So(blank.HasAudio(), ShouldBeFalse)
			So(blank.HasVideo(), ShouldBeFalse)
		})

		Convey("The descriptor joins the known parts", func() {
			So(full.String(), ShouldEqual, "248 1080p webm")
			So(audioOnly.String(), ShouldEqual, "m4a")
		})

		Convey("A descriptor with no parts falls back to the URL", func() {
			So(blank.String(), ShouldEqual, "https://cdn.example/raw")
		})
	})
}

func TestTrackFilename(t *testing.T) {
	Convey("Given tracks with awkward titles", t, func() {
		Convey("Unsafe characters are replaced and the id is appended", func() {
			track := &Track{ID: "abc123", Title: "Deep Focus: Study Mix?"}
			So(track.Filename("mp3"), ShouldEqual, "Deep_Focus_Study_Mix_abc123.mp3")
		})

		Convey("A title that sanitizes to nothing falls back to the id", func() {
			track := &Track{ID: "xyz789", Title: "???"}
			So(track.Filename("opus"), ShouldEqual, "xyz789_xyz789.opus")
		})

		Convey("A track with neither title nor id still yields a stem", func() {
			track := &Track{}
			So(track.Filename("mp3"), ShouldEqual, "track_.mp3")
		})
	})
}

func TestFiltersMatches(t *testing.T) {
	Convey("Given a track with full metadata", t, func() {
		track := &Track{
			Title:           "Morning Jazz",
			DurationSeconds: mo.Some(3600),
			ViewCount:       mo.Some[int64](250000),
			UploadDate:      "20240115",
		}

		Convey("An empty filter set matches everything", func() {
			So((&Filters{}).Matches(track), ShouldBeTrue)
		})

		Convey("Duration bounds are enforced", func() {
			So((&Filters{MinDuration: mo.Some(600)}).Matches(track), ShouldBeTrue)
			So((&Filters{MinDuration: mo.Some(7200)}).Matches(track), ShouldBeFalse)
			So((&Filters{MaxDuration: mo.Some(1800)}).Matches(track), ShouldBeFalse)
		})

		Convey("View bounds are enforced", func() {
			So((&Filters{MinViews: mo.Some[int64](100000)}).Matches(track), ShouldBeTrue)
			So((&Filters{MaxViews: mo.Some[int64](100000)}).Matches(track), ShouldBeFalse)
		})

		Convey("Live broadcasts are rejected when non-live is required", func() {
			live := &Track{Title: "24/7 Lofi Radio", IsLive: true}

			So((&Filters{RequireNonLive: true}).Matches(live), ShouldBeFalse)
			So((&Filters{}).Matches(live), ShouldBeTrue)
			So((&Filters{RequireNonLive: true}).Matches(track), ShouldBeTrue)
		})

		Convey("Age-restricted entries are rejected when safe-for-work is set", func() {
			restricted := &Track{Title: "Club Set", AgeLimit: 18}

			So((&Filters{SafeForWork: true}).Matches(restricted), ShouldBeFalse)
			So((&Filters{}).Matches(restricted), ShouldBeTrue)
			So((&Filters{SafeForWork: true}).Matches(track), ShouldBeTrue)
		})

		Convey("Upload date bounds compare against the YYYYMMDD form", func() {
			after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			before := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

			So((&Filters{UploadAfter: mo.Some(after)}).Matches(track), ShouldBeTrue)
			So((&Filters{UploadBefore: mo.Some(before)}).Matches(track), ShouldBeFalse)
		})
	})

	Convey("Given a track that reports no numeric metadata", t, func() {
		bare := &Track{Title: "Mystery Upload"}

		Convey("Lower bounds fail against the unknown values", func() {
			So((&Filters{MinDuration: mo.Some(60)}).Matches(bare), ShouldBeFalse)
			So((&Filters{MinViews: mo.Some[int64](1)}).Matches(bare), ShouldBeFalse)
		})

		Convey("Upper bounds pass against the unknown values", func() {
			So((&Filters{MaxDuration: mo.Some(60)}).Matches(bare), ShouldBeTrue)
			So((&Filters{MaxViews: mo.Some[int64](1)}).Matches(bare), ShouldBeTrue)
		})

		Convey("A malformed upload date never disqualifies", func() {
			bare.UploadDate = "soon"
			after := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
			So((&Filters{UploadAfter: mo.Some(after)}).Matches(bare), ShouldBeTrue)
		})
	})
}

func TestLinkFromCandidate(t *testing.T) {
	Convey("Given a track and its chosen rendition", t, func() {
		track := &Track{ID: "abc123", Title: "Morning Jazz"}
		candidate := &Candidate{
			URL:            "https://cdn.example/stream",
			Extension:      "webm",
			AudioCodec:     "opus",
			VideoCodec:     CodecNone,
			AverageBitrate: mo.Some(160.0),
			FormatID:       "251",
			Note:           "audio only",
		}

		link := LinkFromCandidate(track, candidate)

		Convey("The link carries the rendition fields", func() {
			So(link.Track, ShouldEqual, track)
			So(link.StreamURL, ShouldEqual, "https://cdn.example/stream")
			So(link.FormatID, ShouldEqual, "251")
			So(link.Extension, ShouldEqual, "webm")
			So(link.AverageBitrate.MustGet(), ShouldEqual, 160.0)
			So(link.Note, ShouldEqual, "audio only")
		})
	})
}
