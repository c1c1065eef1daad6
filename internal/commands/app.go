package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/umalmyha/authflow/internal/flow"
	"github.com/umalmyha/authflow/internal/infra"
	"github.com/umalmyha/authflow/internal/notification"
	"github.com/umalmyha/authflow/internal/tui"
)

func appCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "app",
		Short: "Run login, sign up and home screens in terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			logCloser, err := infra.Logger(cfg.LogCfg, true)
			if err != nil {
				return err
			}
			defer logCloser.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runApp(ctx)
		},
	}
}

func runApp(ctx context.Context) error {
	prefSvc, closers, err := infra.PreferenceService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closers.Close(); err != nil {
			logrus.Errorf("failed to release preference store - %v", err)
		}
	}()

	authenticator, err := infra.Authenticator(cfg.AuthCfg)
	if err != nil {
		return err
	}

	deps := tui.Dependencies{
		Rules:         rules,
		Authenticator: authenticator,
		PrefSvc:       prefSvc,
		Notifier:      notification.NewLogNotifier(logrus.StandardLogger()),
		Providers:     infra.SocialProviders(cfg.SocialCfg),
	}

	bridge := tui.NewBridge()
	app := tui.NewApp(bridge, tui.Screens(deps, bridge), flow.Login)

	logrus.WithField("authBackend", cfg.AuthCfg.Backend).Info("starting terminal ui")
	return tui.Run(ctx, app)
}
