package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/prefbot/internal/adapters/discord"
	"github.com/bnema/prefbot/internal/adapters/metrics"
	"github.com/bnema/prefbot/internal/application"
	"github.com/bnema/prefbot/internal/domain"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and serve the preferences menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, app)
		},
	}
}

func runServe(ctx context.Context, app *app) error {
	cfg := app.cfg
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	catalog, err := app.loadCatalog(ctx)
	if err != nil {
		return err
	}
	app.logger.Info("catalog loaded",
		"packs", len(catalog.Packs()),
		"individuals", len(catalog.Individuals()),
		"managed_roles", len(catalog.ManagedRoleIDs()),
	)

	token, err := app.botToken(ctx)
	if err != nil {
		return err
	}

	session, err := discord.NewSession(token)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := recorder.Serve(ctx, cfg.MetricsAddr, app.logger); err != nil {
				app.logger.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	gateway := recorder.InstrumentGateway(discord.NewRoleGateway(session, cfg.GuildID))
	service := application.NewService(catalog, gateway, discord.NewDirectMessenger(session), application.ServiceOptions{
		OwnerID:  domain.UserID(cfg.OwnerID),
		Observer: recorder,
		Logger:   app.logger,
	})

	bot := discord.NewBot(session, application.NewDispatcher(service), discord.BotOptions{
		ApplicationID:      cfg.ApplicationID,
		StatusMessage:      cfg.StatusMessage,
		InteractionTimeout: cfg.InteractionTimeout,
		Logger:             app.logger,
	})

	return bot.Run(ctx)
}
