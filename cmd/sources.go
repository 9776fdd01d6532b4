// Package cmd implements the command-line interface for utune.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/utune-cli/utune/color"
	"github.com/utune-cli/utune/provider"
	"github.com/utune-cli/utune/style"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for inspecting media providers.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the available media providers",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all registered media providers.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered media providers",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		if printHeader {
			cmd.Println(headerStyle("Builtin:"))
		}

		for _, p := range provider.Builtins() {
			cmd.Println(p.Name)
		}
	},
}
