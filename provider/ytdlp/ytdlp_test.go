package ytdlp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/utune-cli/utune/source"
)

// fakeSource returns a Source whose execute hook records the arguments and
// replies with canned output.
func fakeSource(output string, err error) (*Source, *[]string) {
	var recorded []string
	s := &Source{
		execute: func(arguments ...string) ([]byte, error) {
			recorded = arguments
			return []byte(output), err
		},
	}
	return s, &recorded
}

const searchOutput = `
{"id":"abc","title":"Uplifting Trance Mix","uploader":"DJ Somebody","duration":3600,"view_count":120000,"upload_date":"20240110","webpage_url":"https://example.com/watch?v=abc","is_live":false,"age_limit":0}
{"id":"def","title":"Live Now","channel":"Station","duration":"junk","webpage_url":"https://example.com/watch?v=def","is_live":true}
not json at all
{"id":"ghi","title":"Age Gated","duration":200,"webpage_url":"https://example.com/watch?v=ghi","age_limit":18}
`

func TestSearch(t *testing.T) {
	Convey("Given a resolver that returns mixed JSON lines", t, func() {
		s, recorded := fakeSource(searchOutput, nil)
		request := source.SearchRequest{
			Genre:      "uplifting trance",
			MaxResults: 5,
			Order:      "relevance",
			Filters:    &source.Filters{RequireNonLive: true, SafeForWork: true},
		}

		Convey("Live, age-gated and malformed entries are dropped", func() {
			tracks, err := s.Search(request)
			So(err, ShouldBeNil)
			So(tracks, ShouldHaveLength, 1)
			So(tracks[0].ID, ShouldEqual, "abc")
			So(tracks[0].Uploader, ShouldEqual, "DJ Somebody")
			So(tracks[0].DurationSeconds, ShouldResemble, mo.Some(3600))
			So(tracks[0].ViewCount, ShouldResemble, mo.Some(int64(120000)))
		})

		Convey("The search pseudo-URL carries the order prefix and limit", func() {
			_, err := s.Search(request)
			So(err, ShouldBeNil)
			So((*recorded)[0], ShouldEqual, "ytsearch5:uplifting trance")
		})

		Convey("A date ordering switches the prefix", func() {
			dated := request
			dated.Order = "date"
			_, err := s.Search(dated)
			So(err, ShouldBeNil)
			So((*recorded)[0], ShouldStartWith, "ytsearchdate5:")
		})
	})

	Convey("Given an artist and extra keywords", t, func() {
		s, recorded := fakeSource("", nil)
		request := source.SearchRequest{
			Genre:      "ambient",
			Artist:     "Brian Eno",
			MaxResults: 3,
			Filters:    &source.Filters{Keywords: "full album"},
		}

		Convey("All non-empty parts are joined into the query text", func() {
			_, err := s.Search(request)
			So(err, ShouldBeNil)
			So((*recorded)[0], ShouldEqual, "ytsearch3:ambient Brian Eno full album")
		})
	})

	Convey("Given an empty query", t, func() {
		s, _ := fakeSource("", nil)

		Convey("Search fails before invoking the resolver", func() {
			_, err := s.Search(source.SearchRequest{MaxResults: 3})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a resolver failure", t, func() {
		s, _ := fakeSource("", fmt.Errorf("exit status 1"))

		Convey("The error is propagated", func() {
			_, err := s.Search(source.SearchRequest{Genre: "trance", MaxResults: 1})
			So(err, ShouldNotBeNil)
		})
	})
}

const entryOutput = `{
	"id": "abc",
	"title": "Uplifting Trance Mix",
	"formats": [
		{"url":"https://cdn/a","ext":"webm","acodec":"opus","vcodec":"none","abr":130.5,"tbr":131.2,"format_id":"251"},
		{"url":"https://cdn/v","ext":"mp4","acodec":"none","vcodec":"avc1.64002a","height":1080,"fps":60,"tbr":4400.1,"format_id":"299","format_note":"1080p60"},
		{"url":"https://cdn/x","ext":"mp4","acodec":"mp4a.40.2","vcodec":"avc1.42001E","height":"oops","abr":null,"format_id":"18"}
	]
}`

func TestCandidatesOf(t *testing.T) {
	Convey("Given a resolver entry with a formats array", t, func() {
		s, recorded := fakeSource(entryOutput, nil)
		track := &source.Track{ID: "abc", URL: "https://example.com/watch?v=abc"}

		Convey("Every format maps to a candidate", func() {
			candidates, err := s.CandidatesOf(track)
			So(err, ShouldBeNil)
			So(candidates, ShouldHaveLength, 3)

			So(candidates[0].HasAudio(), ShouldBeTrue)
			So(candidates[0].HasVideo(), ShouldBeFalse)
			So(candidates[0].AverageBitrate, ShouldResemble, mo.Some(130.5))

			So(candidates[1].HasVideo(), ShouldBeTrue)
			So(candidates[1].Height, ShouldResemble, mo.Some(1080))
			So(candidates[1].FPS, ShouldResemble, mo.Some(60.0))
			So(candidates[1].Note, ShouldEqual, "1080p60")
		})

		Convey("Malformed and null numerics stay absent without failing", func() {
			candidates, err := s.CandidatesOf(track)
			So(err, ShouldBeNil)
			So(candidates[2].Height.IsAbsent(), ShouldBeTrue)
			So(candidates[2].AverageBitrate.IsAbsent(), ShouldBeTrue)
			So(candidates[2].HasAudio(), ShouldBeTrue)
		})

		Convey("The track page URL is handed to the resolver", func() {
			_, err := s.CandidatesOf(track)
			So(err, ShouldBeNil)
			So((*recorded)[0], ShouldEqual, track.URL)
		})
	})

	Convey("Given a track without a page URL", t, func() {
		s, _ := fakeSource("", nil)

		Convey("Listing candidates fails", func() {
			_, err := s.CandidatesOf(&source.Track{ID: "abc"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestResolveStream(t *testing.T) {
	track := &source.Track{ID: "abc", Title: "Mix", URL: "https://example.com/watch?v=abc"}

	Convey("Given a single-format resolution", t, func() {
		s, recorded := fakeSource(`{"url":"https://cdn/a","ext":"webm","acodec":"opus","vcodec":"none","abr":130.5,"format_id":"251"}`, nil)

		Convey("The top-level format becomes the streaming link", func() {
			link, err := s.ResolveStream(track, "bestaudio[abr>=128]/bestaudio")
			So(err, ShouldBeNil)
			So(link.StreamURL, ShouldEqual, "https://cdn/a")
			So(link.FormatID, ShouldEqual, "251")
			So(link.Track, ShouldEqual, track)
		})

		Convey("The selector is passed through untouched", func() {
			_, err := s.ResolveStream(track, "bestaudio[abr>=128]/bestaudio")
			So(err, ShouldBeNil)
			So(strings.Join(*recorded, " "), ShouldContainSubstring, "-f bestaudio[abr>=128]/bestaudio")
		})
	})

	Convey("Given a combined video+audio resolution", t, func() {
		s, _ := fakeSource(`{"requested_formats":[
			{"url":"https://cdn/v","ext":"mp4","acodec":"none","vcodec":"avc1","height":1080,"format_id":"299"},
			{"url":"https://cdn/a","ext":"m4a","acodec":"mp4a.40.2","vcodec":"none","format_id":"140"}
		]}`, nil)

		Convey("The first requested format carries the link", func() {
			link, err := s.ResolveStream(track, "bestvideo+bestaudio")
			So(err, ShouldBeNil)
			So(link.StreamURL, ShouldEqual, "https://cdn/v")
			So(link.Height, ShouldResemble, mo.Some(1080))
		})
	})

	Convey("Given a resolution with no stream at all", t, func() {
		s, _ := fakeSource(`{"id":"abc"}`, nil)

		Convey("Resolution fails", func() {
			_, err := s.ResolveStream(track, "bestaudio")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given an empty selector", t, func() {
		s, _ := fakeSource("", nil)

		Convey("Resolution fails before invoking the resolver", func() {
			_, err := s.ResolveStream(track, "")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFetch(t *testing.T) {
	track := &source.Track{ID: "abc", Title: "Mix", URL: "https://example.com/watch?v=abc"}

	Convey("Given a configured runtime passthrough", t, func() {
		s, recorded := fakeSource("", nil)
		s.jsRuntime = "deno"
		s.remoteComponents = []string{"ejs:github"}

		Convey("Fetch forwards transcoding flags and passthrough options", func() {
			err := s.Fetch(track, "/music/mix.mp3", "bestaudio/best", "mp3", "192")
			So(err, ShouldBeNil)

			joined := strings.Join(*recorded, " ")
			So(joined, ShouldContainSubstring, "--js-runtime deno")
			So(joined, ShouldContainSubstring, "--remote-components ejs:github")
			So(joined, ShouldContainSubstring, "--extract-audio")
			So(joined, ShouldContainSubstring, "--audio-format mp3")
			So(joined, ShouldContainSubstring, "--audio-quality 192")
			So(joined, ShouldContainSubstring, "--output /music/mix.mp3")
			So(joined, ShouldContainSubstring, "-f bestaudio/best")
		})
	})

	Convey("Given a track without a page URL", t, func() {
		s, _ := fakeSource("", nil)

		Convey("Fetch fails before invoking the resolver", func() {
			err := s.Fetch(&source.Track{ID: "abc"}, "/music/x.mp3", "bestaudio", "mp3", "192")
			So(err, ShouldNotBeNil)
		})
	})
}
