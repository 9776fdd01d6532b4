package download

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/utune-cli/utune/filesystem"
	"github.com/utune-cli/utune/quality"
	"github.com/utune-cli/utune/source"
)

type call struct {
	track        *source.Track
	outputPath   string
	selector     string
	audioFormat  string
	audioQuality string
}

type fakeFetcher struct {
	calls   []call
	failOn  string
	created bool
}

func (f *fakeFetcher) Fetch(track *source.Track, outputPath, selector, audioFormat, audioQuality string) error {
	f.calls = append(f.calls, call{track, outputPath, selector, audioFormat, audioQuality})
	if track.ID == f.failOn {
		return fmt.Errorf("resolver exploded")
	}
	return nil
}

func TestDownload(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	manager := func(fetcher Fetcher) *Manager {
		return &Manager{
			Fetcher:      fetcher,
			Dir:          "/music/utune",
			AudioFormat:  "mp3",
			AudioQuality: "192",
			Profile:      quality.Get("high"),
		}
	}

	first := &source.Track{ID: "v1", Title: "First Mix", URL: "https://example.com/1"}
	second := &source.Track{ID: "v2", Title: "Second: Mix?", URL: "https://example.com/2"}
	orphan := &source.Track{ID: "v3", Title: "No URL"}

	Convey("Given a batch with a URL-less track in the middle", t, func() {
		fetcher := &fakeFetcher{}
		paths, err := manager(fetcher).Download([]*source.Track{first, orphan, second})

		Convey("The orphan is skipped and the rest are fetched", func() {
			So(err, ShouldBeNil)
			So(paths, ShouldHaveLength, 2)
			So(fetcher.calls, ShouldHaveLength, 2)
		})

		Convey("Filenames are sanitized and carry the track id", func() {
			So(paths[0], ShouldEqual, "/music/utune/First_Mix_v1.mp3")
			So(paths[1], ShouldNotContainSubstring, "?")
			So(paths[1], ShouldContainSubstring, "_v2.mp3")
		})

		Convey("The downloads directory exists afterwards", func() {
			exists, fsErr := filesystem.API().DirExists("/music/utune")
			So(fsErr, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("Each fetch carries the profile's audio selector chain", func() {
			So(fetcher.calls[0].selector, ShouldEqual, quality.BuildAudioSelector(quality.Get("high")))
			So(fetcher.calls[0].audioFormat, ShouldEqual, "mp3")
			So(fetcher.calls[0].audioQuality, ShouldEqual, "192")
		})
	})

	Convey("Given a fetch failure mid-batch", t, func() {
		fetcher := &fakeFetcher{failOn: "v2"}
		paths, err := manager(fetcher).Download([]*source.Track{first, second})

		Convey("The batch aborts but reports what was saved", func() {
			So(err, ShouldNotBeNil)
			So(paths, ShouldHaveLength, 1)
			So(paths[0], ShouldContainSubstring, "_v1.mp3")
		})
	})
}
