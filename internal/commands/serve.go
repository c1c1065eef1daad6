package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/umalmyha/authflow/internal/auth"
	"github.com/umalmyha/authflow/internal/infra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve stub authentication api consumed by http auth backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := infra.Logger(cfg.LogCfg, false); err != nil {
				return err
			}
			return serve()
		},
	}
}

func serve() error {
	authenticator, err := auth.NewStubAuthenticator(cfg.AuthCfg.StubDelay)
	if err != nil {
		return err
	}

	e := infra.Router(authenticator, rules)

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		logrus.Infof("starting server on port %d", cfg.ServerCfg.Port)
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.ServerCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerCfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to stop server gracefully - %w", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutting down the server, unexpected error occurred - %w", err)
		}
	}
	return nil
}
