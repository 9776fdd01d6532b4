// Package cmd implements the command-line interface for utune.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/utune-cli/utune/color"
	"github.com/utune-cli/utune/constant"
	"github.com/utune-cli/utune/icon"
	"github.com/utune-cli/utune/key"
	"github.com/utune-cli/utune/log"
	"github.com/utune-cli/utune/provider"
	"github.com/utune-cli/utune/quality"
	"github.com/utune-cli/utune/style"
	"github.com/utune-cli/utune/util"
	"github.com/utune-cli/utune/version"
	"github.com/utune-cli/utune/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Specify the provider used to search and resolve tracks")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var sources []string
		for _, p := range provider.Builtins() {
			sources = append(sources, p.Name)
		}
		return sources, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.DefaultSource, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.PersistentFlags().StringP("profile", "P", "", "Quality profile driving rendition selection")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("profile", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return quality.Names(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.QualityProfile, rootCmd.PersistentFlags().Lookup("profile")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist streamed and downloaded tracks to the localized history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the utune application.
var rootCmd = &cobra.Command{
	Use:   constant.Utune,
	Short: "A minimalist command-line interface for music discovery and streaming",
	Long: style.New().Italic(true).Foreground(color.HiCyan).
		Render("    - A minimalist command-line interface for music discovery and streaming"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
