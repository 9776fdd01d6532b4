package quality

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Profile lookup", t, func() {
		Convey("Resolves known names", func() {
			So(Get("high").Name, ShouldEqual, "high")
			So(Get("medium").Name, ShouldEqual, "medium")
			So(Get("data_saving").Name, ShouldEqual, "data_saving")
		})

		Convey("Is case-insensitive", func() {
			So(Get("HIGH").Name, ShouldEqual, "high")
			So(Get("Medium").Name, ShouldEqual, "medium")
		})

		Convey("Falls back to the default for empty names", func() {
			So(Get("").Name, ShouldEqual, DefaultProfileName)
		})

		Convey("Falls back to the default for unknown names", func() {
			So(Get("ultra").Name, ShouldEqual, DefaultProfileName)
			So(Get("low").Name, ShouldEqual, DefaultProfileName)
		})
	})
}

func TestNames(t *testing.T) {
	Convey("Names lists every registered profile", t, func() {
		names := Names()
		So(names, ShouldHaveLength, 3)
		for _, name := range names {
			So(Get(name).Name, ShouldEqual, name)
		}
	})
}

func TestCatalogShape(t *testing.T) {
	Convey("Catalog profiles carry descending thresholds and tiers", t, func() {
		for _, name := range Names() {
			profile := Get(name)

			So(profile.AudioThresholds, ShouldNotBeEmpty)
			for i := 1; i < len(profile.AudioThresholds); i++ {
				So(profile.AudioThresholds[i], ShouldBeLessThanOrEqualTo, profile.AudioThresholds[i-1])
			}

			So(profile.VideoRequirements, ShouldNotBeEmpty)
			for i := 1; i < len(profile.VideoRequirements); i++ {
				So(profile.VideoRequirements[i].MinHeight,
					ShouldBeLessThanOrEqualTo, profile.VideoRequirements[i-1].MinHeight)
			}

			So(profile.PreferredAudioCodecs, ShouldResemble, []string{"opus", "aac"})
		}
	})
}
