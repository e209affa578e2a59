package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bigcommunity/taskbot/internal/app"
	"github.com/bigcommunity/taskbot/internal/infra/config"
	"github.com/bigcommunity/taskbot/internal/infra/telegram"
)

// newServeCommand creates the serve command that runs the bot.
func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot until interrupted",
		Long: `Start long-polling Telegram for updates and answer them.

The bot token is read from the ` + config.EnvToken + ` environment
variable. The database schema is created on startup when missing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := app.New(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = container.Close() }()

			if container.Config.Token == "" {
				return errors.New("bot token not set; export " + config.EnvToken)
			}
			if err := container.StoreInitializer.Initialize(); err != nil {
				return err
			}

			gateway, err := telegram.New(container.Config.Token, container.Router(), container.Logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cmd.Printf("taskbot running as @%s\n", gateway.Username())
			err = gateway.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
