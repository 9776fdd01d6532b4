// Package cmd implements the command-line interface for utune.
package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/utune-cli/utune/download"
	"github.com/utune-cli/utune/icon"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/style"
	"github.com/utune-cli/utune/util"

	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	registerSearchFlags(downloadCmd)
	downloadCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	downloadCmd.Flags().StringP("path", "p", "", "Directory to save the tracks into")
	lo.Must0(viper.BindPFlag(key.DownloadsPath, downloadCmd.Flags().Lookup("path")))

	downloadCmd.ValidArgsFunction = completionQueries
	downloadCmd.SetOut(os.Stdout)
}

// downloadCmd fetches matching tracks to disk as audio files.
var downloadCmd = &cobra.Command{
	Use:     "download [query]",
	Short:   "Search for tracks and save them to disk as audio files",
	Example: "  utune download uplifting trance --limit 5 --yes\n  utune download lofi -p ~/Music/lofi",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		skipConfirm := lo.Must(cmd.Flags().GetBool("yes"))

		checkResolver()

		src := activeSource()
		request := searchRequestFromFlags(cmd, args)
		tracks := runSearch(src, request)

		if len(tracks) == 0 {
			handleErr(fmt.Errorf("no results for %q", request.Genre))
		}

		fetcher, ok := src.(download.Fetcher)
		if !ok {
			handleErr(fmt.Errorf("source %q cannot download tracks", src.Name()))
		}

		manager := download.NewManager(fetcher)

		if !skipConfirm {
			confirm := survey.Confirm{
				Message: fmt.Sprintf("Download %s to %s?", util.Quantify(len(tracks), "track", "tracks"), manager.Dir),
				Default: true,
			}

			var approved bool
			handleErr(survey.AskOne(&confirm, &approved))
			if !approved {
				return
			}
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Downloading %s...", icon.Get(icon.Progress), util.Quantify(len(tracks), "track", "tracks")))
		paths, err := manager.Download(tracks)
		erase()

		for _, path := range paths {
			cmd.Printf("%s %s\n", icon.Get(icon.Download), path)
		}
		handleErr(err)

		cmd.Println()
		cmd.Printf("%s saved %s\n", icon.Get(icon.Success), style.Bold(util.Quantify(len(paths), "track", "tracks")))
	},
}
