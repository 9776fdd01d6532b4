// Package cmd implements the command-line interface for utune.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/utune-cli/utune/color"
	"github.com/utune-cli/utune/history"
	"github.com/utune-cli/utune/icon"
	"github.com/utune-cli/utune/style"
	"github.com/utune-cli/utune/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

// historyCmd serves as the parent command for inspecting playback history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage the playback history",
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	historyListCmd.SetOut(os.Stdout)
}

// historyListCmd displays all preserved playback records.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all preserved playback records",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		records := lo.Values(saved)
		sort.Slice(records, func(i, j int) bool {
			return records[i].LastPlayed.After(records[j].LastPlayed)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("history is empty"))
			return
		}

		for _, record := range records {
			cmd.Printf("%s %s\n", icon.Get(icon.Play), style.Bold(record.Title))
			cmd.Printf(
				"  %s\n",
				style.Faint(fmt.Sprintf(
					"%s · %s · %s profile · %s",
					record.Uploader,
					util.Quantify(record.PlayCount, "play", "plays"),
					record.Profile,
					record.LastPlayed.Format("2006-01-02 15:04"),
				)),
			)
			cmd.Printf("  %s\n", style.Fg(color.Blue)(record.URL))
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
	historyRemoveCmd.Flags().StringP("title", "t", "", "The title of the record to remove")
	lo.Must0(historyRemoveCmd.MarkFlagRequired("title"))
}

// historyRemoveCmd deletes a single record from the playback history.
var historyRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently delete a single record from the playback history",
	Run: func(cmd *cobra.Command, args []string) {
		title := lo.Must(cmd.Flags().GetString("title"))

		saved, err := history.Get()
		handleErr(err)

		for _, record := range saved {
			if record.Title == title {
				handleErr(history.Remove(record))
				fmt.Printf(
					"%s removed %s from history\n",
					style.Fg(color.Green)(icon.Get(icon.Success)),
					style.Fg(color.Yellow)(title),
				)
				return
			}
		}

		handleErr(fmt.Errorf("no history record titled %q", title))
	},
}
