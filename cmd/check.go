// Package cmd implements the command-line interface for utune.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/utune-cli/utune/color"
	"github.com/utune-cli/utune/constant"
	"github.com/utune-cli/utune/icon"
	"github.com/utune-cli/utune/style"
)

// installHints maps each external dependency to per-platform install commands.
var installHints = map[string]map[string]string{
	constant.Resolver: {
		"darwin":  "brew install yt-dlp",
		"linux":   "pip install -U yt-dlp",
		"windows": "scoop install yt-dlp",
	},
	"mpv": {
		"darwin":  "brew install mpv",
		"linux":   "sudo apt install mpv",
		"windows": "scoop install mpv",
	},
}

// checkResolver verifies that the external resolver binary is reachable.
// Every search, listing and download goes through it.
func checkResolver() {
	if _, err := exec.LookPath(constant.Resolver); err != nil {
		printMissingDependencyError(constant.Resolver)
		os.Exit(1)
	}
}

// checkPlayer verifies that the configured playback binary is reachable.
func checkPlayer(name string) {
	if _, err := exec.LookPath(name); err != nil {
		printMissingDependencyError(name)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	installCmd := installHints[dep][runtime.GOOS]

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).
		Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s",
			style.New().Foreground(color.HiYellow).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
