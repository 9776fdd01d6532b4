// Package cmd implements the command-line interface for utune.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/utune-cli/utune/color"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/quality"
	"github.com/utune-cli/utune/style"
)

func init() {
	rootCmd.AddCommand(profilesCmd)

	profilesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	profilesCmd.SetOut(os.Stdout)
}

// profileOutput is the structured shape of one catalog entry.
type profileOutput struct {
	Name                 string                     `json:"name"`
	Default              bool                       `json:"default"`
	AudioThresholds      []int                      `json:"audio_thresholds"`
	VideoRequirements    []quality.VideoRequirement `json:"video_requirements"`
	PreferredAudioCodecs []string                   `json:"preferred_audio_codecs"`
	AudioSelector        string                     `json:"audio_selector"`
	VideoAudioSelector   string                     `json:"video_audio_selector"`
}

// profilesCmd lists the quality profile catalog and the selector chains
// derived from it.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Display the quality profile catalog and its resolver selector chains",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson  = lo.Must(cmd.Flags().GetBool("json"))
			current = viper.GetString(key.QualityProfile)
		)

		if asJson {
			output := make([]profileOutput, 0, len(quality.Names()))
			for _, name := range quality.Names() {
				p := quality.Get(name)
				output = append(output, profileOutput{
					Name:                 name,
					Default:              strings.EqualFold(name, current),
					AudioThresholds:      p.AudioThresholds,
					VideoRequirements:    p.VideoRequirements,
					PreferredAudioCodecs: p.PreferredAudioCodecs,
					AudioSelector:        quality.BuildAudioSelector(p),
					VideoAudioSelector:   quality.BuildVideoAudioSelector(p),
				})
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(output))
			return
		}

		for i, name := range quality.Names() {
			p := quality.Get(name)

			header := style.Title(name)
			if strings.EqualFold(name, current) {
				header += " " + style.Fg(color.Green)("(active)")
			}
			cmd.Println(header)

			thresholds := lo.Map(p.AudioThresholds, func(t int, _ int) string {
				return fmt.Sprintf("%d kbit/s", t)
			})
			cmd.Printf("  %s %s\n", style.Faint("audio floors:"), strings.Join(thresholds, ", "))

			tiers := lo.Map(p.VideoRequirements, func(r quality.VideoRequirement, _ int) string {
				if fps, ok := r.MinFPS.Get(); ok {
					return fmt.Sprintf("%dp%d", r.MinHeight, fps)
				}
				return fmt.Sprintf("%dp", r.MinHeight)
			})
			cmd.Printf("  %s %s\n", style.Faint("video tiers:"), strings.Join(tiers, ", "))
			cmd.Printf("  %s %s\n", style.Faint("codecs:"), strings.Join(p.PreferredAudioCodecs, ", "))
			cmd.Printf("  %s %s\n", style.Faint("audio selector:"), quality.BuildAudioSelector(p))

			if i < len(quality.Names())-1 {
				cmd.Println()
			}
		}
	},
}
