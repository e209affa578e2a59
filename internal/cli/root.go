// Package cli provides the command-line interface for the task bot.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for taskbot.
// It receives the version for display.
func NewRootCommand(version string) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "taskbot",
		Short: "Community task and changelog tracker bot",
		Long: `taskbot is a Telegram bot that tracks community tasks and
changelog entries in a local sqlite database.

Tasks carry a status, a priority and a category; changelog entries can be
pinned and filtered by category. All interaction happens through bot
commands and inline keyboards.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the TOML config file")

	root.AddCommand(
		newServeCommand(&configPath),
		newInitDBCommand(&configPath),
		newStatsCommand(&configPath),
	)

	return root
}
