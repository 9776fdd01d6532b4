package history

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/utune-cli/utune/filesystem"
	"github.com/utune-cli/utune/source"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a resolved streaming link", t, func() {
		track := &source.Track{
			ID:       "abc",
			Title:    "Uplifting Trance Mix",
			Uploader: "DJ Somebody",
			URL:      "https://example.com/watch?v=abc",
		}
		link := &source.StreamingLink{
			Track:     track,
			StreamURL: "https://cdn/a",
			FormatID:  "251",
			Extension: "webm",
		}

		Convey("When saving the playback", func() {
			err := Save("ytdlp", link, "high")
			So(err, ShouldBeNil)

			Convey("Then the record is retrievable under its title key", func() {
				saved, err := Get()
				So(err, ShouldBeNil)

				record := saved[fmt.Sprintf("%s (%s)", track.Title, "ytdlp")]
				So(record, ShouldNotBeNil)
				So(record.FormatID, ShouldEqual, "251")
				So(record.Profile, ShouldEqual, "high")
				So(record.PlayCount, ShouldEqual, 1)
			})

			Convey("And repeated saves accumulate the play count", func() {
				So(Save("ytdlp", link, "high"), ShouldBeNil)

				saved, err := Get()
				So(err, ShouldBeNil)

				record := saved[fmt.Sprintf("%s (%s)", track.Title, "ytdlp")]
				So(record.PlayCount, ShouldBeGreaterThanOrEqualTo, 2)
			})

			Convey("And removing the record empties the registry", func() {
				saved, err := Get()
				So(err, ShouldBeNil)

				record := saved[fmt.Sprintf("%s (%s)", track.Title, "ytdlp")]
				So(Remove(record), ShouldBeNil)

				after, err := Get()
				So(err, ShouldBeNil)
				_, stillThere := after[fmt.Sprintf("%s (%s)", track.Title, "ytdlp")]
				So(stillThere, ShouldBeFalse)
			})
		})
	})
}
