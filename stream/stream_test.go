package stream

import (
	"fmt"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/utune-cli/utune/quality"
	"github.com/utune-cli/utune/source"
)

// fakeSource serves a fixed candidate list per track id and can fail on
// demand.
type fakeSource struct {
	candidates map[string][]*source.Candidate
	failing    map[string]bool
}

func (f *fakeSource) Name() string { return "fake" }
func (f *fakeSource) ID() string   { return "fake" }

func (f *fakeSource) Search(source.SearchRequest) ([]*source.Track, error) {
	return nil, nil
}

func (f *fakeSource) CandidatesOf(track *source.Track) ([]*source.Candidate, error) {
	if f.failing[track.ID] {
		return nil, fmt.Errorf("listing failed")
	}
	return f.candidates[track.ID], nil
}

func (f *fakeSource) ResolveStream(*source.Track, string) (*source.StreamingLink, error) {
	return nil, fmt.Errorf("not used")
}

func opusAt(abr float64) *source.Candidate {
	return &source.Candidate{
		URL:            fmt.Sprintf("https://cdn/opus-%v", abr),
		Extension:      "webm",
		AudioCodec:     "opus",
		VideoCodec:     source.CodecNone,
		AverageBitrate: mo.Some(abr),
	}
}

func TestStreamer(t *testing.T) {
	playable := &source.Track{ID: "ok", Title: "Playable"}
	silent := &source.Track{ID: "silent", Title: "No Renditions"}
	broken := &source.Track{ID: "broken", Title: "Listing Fails"}

	streamer := &Streamer{
		Source: &fakeSource{
			candidates: map[string][]*source.Candidate{
				"ok":     {opusAt(96), opusAt(160)},
				"silent": {},
			},
			failing: map[string]bool{"broken": true},
		},
		Request: quality.Request{Profile: quality.Get("high")},
	}

	Convey("Given a track with usable renditions", t, func() {
		Convey("Link carries the selected rendition's fields", func() {
			link, err := streamer.Link(playable)
			So(err, ShouldBeNil)
			So(link, ShouldNotBeNil)
			So(link.Track, ShouldEqual, playable)
			So(link.AverageBitrate, ShouldResemble, mo.Some(160.0))
		})
	})

	Convey("Given a track with no renditions at all", t, func() {
		Convey("Link returns nil without an error", func() {
			link, err := streamer.Link(silent)
			So(err, ShouldBeNil)
			So(link, ShouldBeNil)
		})
	})

	Convey("Given a batch with misses and failures in the middle", t, func() {
		Convey("Links skips them and keeps the rest", func() {
			links := streamer.Links([]*source.Track{broken, silent, playable})
			So(links, ShouldHaveLength, 1)
			So(links[0].Track, ShouldEqual, playable)
		})

		Convey("First walks past misses to the first resolvable track", func() {
			link, err := streamer.First([]*source.Track{broken, silent, playable})
			So(err, ShouldBeNil)
			So(link.Track, ShouldEqual, playable)
		})

		Convey("First fails when every track misses", func() {
			_, err := streamer.First([]*source.Track{broken, silent})
			So(err, ShouldNotBeNil)
		})
	})
}
