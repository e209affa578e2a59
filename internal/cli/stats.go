package cli

import (
	"github.com/spf13/cobra"

	"github.com/bigcommunity/taskbot/internal/app"
	"github.com/bigcommunity/taskbot/internal/format"
)

// newStatsCommand creates the stats command for local inspection.
func newStatsCommand(configPath *string) *cobra.Command {
	var changelog bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print task (or changelog) statistics from the local database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := app.New(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = container.Close() }()

			if err := container.StoreInitializer.Initialize(); err != nil {
				return err
			}

			if changelog {
				out, err := container.ChangelogStatsUseCase().Execute(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Println(format.ChangelogStats(out.Stats))
				return nil
			}

			out, err := container.TaskStatsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(format.TaskStats(out.Stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&changelog, "changelog", false, "show changelog statistics instead of task statistics")
	return cmd
}
