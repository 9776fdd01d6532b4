// Package cmd implements the command-line interface for utune.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/utune-cli/utune/history"
	"github.com/utune-cli/utune/icon"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/player"
	"github.com/utune-cli/utune/source"
	"github.com/utune-cli/utune/stream"
	"github.com/utune-cli/utune/style"
)

func init() {
	rootCmd.AddCommand(streamCmd)

	registerSearchFlags(streamCmd)
	streamCmd.Flags().Bool("video", false, "Prefer renditions that carry a video stream")
	lo.Must0(viper.BindPFlag(key.QualityPreferVideo, streamCmd.Flags().Lookup("video")))

	streamCmd.Flags().StringP("quality", "q", "", "Profile name used as a video resolution cap")
	lo.Must0(viper.BindPFlag(key.QualityVideoProfile, streamCmd.Flags().Lookup("quality")))

	streamCmd.Flags().StringP("container", "c", "", "Preferred container extension (e.g. mp4, m4a)")
	lo.Must0(viper.BindPFlag(key.QualityContainer, streamCmd.Flags().Lookup("container")))

	streamCmd.Flags().Bool("print", false, "Print the resolved stream URL instead of playing it")
	streamCmd.Flags().BoolP("first", "f", false, "Play the first result without prompting")
	streamCmd.ValidArgsFunction = completionQueries
	streamCmd.SetOut(os.Stdout)
}

// streamCmd resolves a track to a playable link and hands it to the player.
var streamCmd = &cobra.Command{
	Use:     "stream [query]",
	Short:   "Search for a track and stream it with the configured player",
	Example: "  utune stream ambient study --first\n  utune stream synthwave --video -q medium\n  utune stream lofi --print",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			printOnly = lo.Must(cmd.Flags().GetBool("print"))
			first     = lo.Must(cmd.Flags().GetBool("first"))
		)

		checkResolver()

		src := activeSource()
		request := searchRequestFromFlags(cmd, args)
		tracks := runSearch(src, request)

		if len(tracks) == 0 {
			handleErr(fmt.Errorf("no results for %q", request.Genre))
		}

		track := tracks[0]
		if !first && len(tracks) > 1 {
			track = pickTrack(tracks)
		}

		streamer := &stream.Streamer{Source: src, Request: qualityRequest()}

		link, err := streamer.Link(track)
		handleErr(err)
		if link == nil {
			handleErr(fmt.Errorf("no usable rendition for %q", track.Title))
		}

		if printOnly {
			cmd.Println(link.StreamURL)
			return
		}

		playerName := viper.GetString(key.Player)
		checkPlayer(playerName)

		p, err := player.New(playerName)
		handleErr(err)

		handleErr(p.Play(link.StreamURL, link.Track.Title))

		if viper.GetBool(key.HistorySaveOnPlay) {
			_ = history.Save(src.ID(), link, viper.GetString(key.QualityProfile))
		}

		rendition := link.Note
		if rendition == "" {
			rendition = link.Extension
		}
		cmd.Printf("%s Playing %s %s\n",
			icon.Get(icon.Play),
			style.Bold(link.Track.Title),
			style.Faint(fmt.Sprintf("(%s)", rendition)),
		)

		<-p.Wait()
	},
}

// pickTrack prompts for one track out of the search results.
func pickTrack(tracks []*source.Track) *source.Track {
	options := make([]string, 0, len(tracks))
	byOption := make(map[string]*source.Track, len(tracks))

	for _, track := range tracks {
		option := track.Title
		if duration, ok := track.DurationSeconds.Get(); ok {
			option = fmt.Sprintf("%s (%s)", option, formatDuration(duration))
		}
		options = append(options, option)
		byOption[option] = track
	}

	prompt := survey.Select{
		Message:  "Pick a track to stream",
		Options:  options,
		PageSize: 10,
	}

	var answer string
	handleErr(survey.AskOne(&prompt, &answer))

	return byOption[answer]
}
