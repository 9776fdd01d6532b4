// Package cmd implements the command-line interface for utune.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/utune-cli/utune/color"
	"github.com/utune-cli/utune/icon"
	"github.com/utune-cli/utune/open"
	"github.com/utune-cli/utune/source"
	"github.com/utune-cli/utune/style"
	"github.com/utune-cli/utune/util"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	registerSearchFlags(searchCmd)
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	searchCmd.Flags().BoolP("candidates", "c", false, "Include the available renditions of each track (implies --json)")
	searchCmd.Flags().BoolP("open", "o", false, "Open the page of the top result in the default browser")
	searchCmd.ValidArgsFunction = completionQueries
	searchCmd.SetOut(os.Stdout)
}

// searchOutput is the structured result shape emitted by --json and described
// by the schema command.
type searchOutput struct {
	Query  string         `json:"query"`
	Source string         `json:"source"`
	Tracks []*trackOutput `json:"tracks"`
}

type trackOutput struct {
	*source.Track
	Candidates []*source.Candidate `json:"candidates,omitempty"`
}

// searchCmd discovers tracks matching a genre or theme query.
var searchCmd = &cobra.Command{
	Use:     "search [query]",
	Short:   "Search for tracks matching a genre, theme or artist",
	Example: "  utune search uplifting trance --limit 10\n  utune search lofi --artist \"Chillhop Music\" --json",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson         = lo.Must(cmd.Flags().GetBool("json"))
			withCandidates = lo.Must(cmd.Flags().GetBool("candidates"))
		)

		checkResolver()

		src := activeSource()
		request := searchRequestFromFlags(cmd, args)
		tracks := runSearch(src, request)

		if len(tracks) == 0 {
			handleErr(fmt.Errorf("no results for %q", request.Genre))
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(tracks[0].URL))
		}

		if asJson || withCandidates {
			output := searchOutput{
				Query:  request.Genre,
				Source: src.ID(),
				Tracks: make([]*trackOutput, 0, len(tracks)),
			}

			for _, track := range tracks {
				entry := &trackOutput{Track: track}
				if withCandidates {
					candidates, err := src.CandidatesOf(track)
					handleErr(err)
					entry.Candidates = candidates
				}
				output.Tracks = append(output.Tracks, entry)
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(output))
			return
		}

		for _, track := range tracks {
			cmd.Printf("%s %s\n", icon.Get(icon.Audio), style.Bold(track.Title))

			details := track.Uploader
			if duration, ok := track.DurationSeconds.Get(); ok {
				details += " · " + formatDuration(duration)
			}
			if views, ok := track.ViewCount.Get(); ok {
				details += " · " + util.Quantify(int(views), "view", "views")
			}
			cmd.Printf("  %s\n", style.Faint(details))
			cmd.Printf("  %s\n", style.Fg(color.Blue)(track.URL))
		}

		cmd.Println()
		cmd.Println(style.Faint(util.Quantify(len(tracks), "track found", "tracks found")))
	},
}
