package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/utune-cli/utune/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("quality.prefer.video")
			So(result, ShouldEqual, "quality_prefer_video")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field env names carry the application prefix", t, func() {
		f := Default["quality.profile"]
		So(f.Env(), ShouldEqual, "UTUNE_QUALITY_PROFILE")
	})
}
