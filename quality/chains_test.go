package quality

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func noDuplicates(items []string) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return false
		}
		seen[item] = struct{}{}
	}
	return true
}

func TestAudioSelectors(t *testing.T) {
	Convey("Audio selector chains", t, func() {
		Convey("Emit one expression per threshold, most selective first", func() {
			So(Get("high").AudioSelectors(), ShouldResemble, []string{
				"bestaudio[abr>=256]",
				"bestaudio[abr>=160]",
				"bestaudio[abr>=128]",
				"bestaudio",
				"bestaudio/best",
			})
		})

		Convey("Deduplicate repeated thresholds", func() {
			p := Profile{Name: "custom", AudioThresholds: []int{128, 128, 96}}
			So(p.AudioSelectors(), ShouldResemble, []string{
				"bestaudio[abr>=128]",
				"bestaudio[abr>=96]",
				"bestaudio",
				"bestaudio/best",
			})
		})

		Convey("Contain no duplicates and end in a universal fallback for all profiles", func() {
			for _, name := range Names() {
				selectors := Get(name).AudioSelectors()
				So(noDuplicates(selectors), ShouldBeTrue)
				So(selectors[len(selectors)-1], ShouldEqual, "bestaudio/best")
			}
		})
	})
}

func TestVideoSelectors(t *testing.T) {
	Convey("Video selector chains", t, func() {
		Convey("Combine height and fps floors when both are set", func() {
			So(Get("high").VideoSelectors(), ShouldResemble, []string{
				"bestvideo[height>=1080][fps>=60]",
				"bestvideo[height>=1080]",
				"bestvideo[height>=720][fps>=60]",
				"bestvideo[height>=720]",
				"bestvideo",
				"bestvideo+bestaudio/best",
			})
		})

		Convey("Omit the fps constraint for fps-less tiers", func() {
			So(Get("data_saving").VideoSelectors(), ShouldResemble, []string{
				"bestvideo[height>=480]",
				"bestvideo[height>=360]",
				"bestvideo",
				"bestvideo+bestaudio/best",
			})
		})

		Convey("Contain no duplicates and end in a universal fallback for all profiles", func() {
			for _, name := range Names() {
				selectors := Get(name).VideoSelectors()
				So(noDuplicates(selectors), ShouldBeTrue)
				So(selectors[len(selectors)-1], ShouldEqual, "bestvideo+bestaudio/best")
			}
		})

		Convey("Emit a bare expression for a tier without floors", func() {
			p := Profile{Name: "custom", VideoRequirements: []VideoRequirement{{}}}
			So(p.VideoSelectors(), ShouldResemble, []string{
				"bestvideo",
				"bestvideo+bestaudio/best",
			})
		})
	})
}

func TestCombinedSelectors(t *testing.T) {
	Convey("Combined selector chains", t, func() {
		Convey("Form the cartesian product joined with +", func() {
			p := Profile{
				Name:              "custom",
				AudioThresholds:   []int{128},
				VideoRequirements: []VideoRequirement{{MinHeight: 720, MinFPS: mo.Some(60)}},
			}
			So(p.CombinedSelectors(), ShouldResemble, []string{
				"bestvideo[height>=720][fps>=60]+bestaudio[abr>=128]",
				"bestvideo[height>=720][fps>=60]+bestaudio",
				"bestvideo[height>=720][fps>=60]+bestaudio/best",
				"bestvideo+bestaudio[abr>=128]",
				"bestvideo+bestaudio",
				"bestvideo+bestaudio/best",
				"bestvideo+bestaudio/best+bestaudio[abr>=128]",
				"bestvideo+bestaudio/best+bestaudio",
				"bestvideo+bestaudio/best+bestaudio/best",
			})
		})

		Convey("Contain no duplicates for all catalog profiles", func() {
			for _, name := range Names() {
				So(noDuplicates(Get(name).CombinedSelectors()), ShouldBeTrue)
			}
		})

		Convey("Return the fallbacks alone when both sub-chains are empty", func() {
			p := Profile{Name: "custom"}
			// An empty profile still yields the universal fallbacks via the
			// sub-chain fallbacks, never an empty chain.
			combos := p.CombinedSelectors()
			So(combos, ShouldNotBeEmpty)
			So(combos, ShouldContain, "bestvideo+bestaudio")
			So(combos, ShouldContain, "bestvideo+bestaudio/best")
		})
	})
}

func TestBuildSelectors(t *testing.T) {
	Convey("Rendered selector expressions", t, func() {
		Convey("BuildAudioSelector joins the chain with the fallback separator", func() {
			rendered := BuildAudioSelector(Get("data_saving"))
			So(rendered, ShouldEqual, "bestaudio[abr>=128]/bestaudio[abr>=96]/bestaudio/bestaudio/best")
		})

		Convey("BuildVideoAudioSelector stays inside the resolver grammar", func() {
			rendered := BuildVideoAudioSelector(Get("high"))
			So(rendered, ShouldStartWith, "bestvideo[height>=1080][fps>=60]+bestaudio[abr>=256]")
			So(Get("high").CombinedSelectors(), ShouldContain, "bestvideo+bestaudio")
			So(Get("high").CombinedSelectors(), ShouldContain, "bestvideo+bestaudio/best")
		})
	})
}
