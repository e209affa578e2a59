package cli

import (
	"github.com/spf13/cobra"

	"github.com/bigcommunity/taskbot/internal/app"
)

// newInitDBCommand creates the init-db command.
func newInitDBCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the database schema and default categories",
		Long: `Create the sqlite schema and seed the default task and changelog
categories. Safe to run repeatedly; existing rows are never touched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := app.New(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = container.Close() }()

			if err := container.StoreInitializer.Initialize(); err != nil {
				return err
			}
			cmd.Printf("database ready at %s\n", container.Config.DBPath)
			return nil
		},
	}
}
