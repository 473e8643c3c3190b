package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/susu3304/geoguess/internal/api"
	"github.com/susu3304/geoguess/internal/catalog"
	"github.com/susu3304/geoguess/internal/config"
	"github.com/susu3304/geoguess/internal/guess"
	"github.com/susu3304/geoguess/internal/logging"
	"github.com/susu3304/geoguess/internal/streetview"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "geoguess",
	Short: "Backend for a landmark geography-guessing game",
	Long: `
geoguess serves random landmark locations, scores guessed coordinates by
great-circle distance and signs Street View image URLs.

Without a subcommand it runs the HTTP server.
`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, svc, err := bootstrap()
		if err != nil {
			return err
		}

		redacted := cfg.Redacted()
		logging.Info("starting",
			"version", Version,
			"bind", redacted.WebBind,
			"cors_origins", redacted.CORSOrigins,
			"street_view_configured", svc.StreetViewConfigured(),
		)
		if !svc.StreetViewConfigured() {
			logging.Warn("street view signing disabled; /street-view-url will fail",
				"err", streetview.NewSigner(cfg.MapsAPIKey, cfg.MapsSigningSecret).Err())
		}

		apiServer := api.New(cfg, svc)

		errCh := make(chan error, 1)
		go func() {
			errCh <- apiServer.Start()
		}()

		// Wait for signal to stop
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("API server error: %w", err)
			}
			return nil
		case <-stop:
		}

		logging.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return apiServer.Shutdown(ctx)
	},
}

// bootstrap loads configuration, sets up logging and builds the shared
// game service.
func bootstrap() (*config.Config, *guess.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, cfg.LogFile); err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	svc := guess.NewService(
		catalog.Default(),
		streetview.NewSigner(cfg.MapsAPIKey, cfg.MapsSigningSecret),
	)
	return cfg, svc, nil
}

func init() {
	rootCmd.AddCommand(serveCmd, scoreCmd, signCmd, locationsCmd)
}
