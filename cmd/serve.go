package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abx-navigator/internal/metrics"
	"github.com/ziadkadry99/abx-navigator/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP navigator",
	Long:  `Serves the guide as navigable HTML. Deep links of the form /?part=<path>&doc=<path> open the given document directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger := newLogger(cfg, nil)
		slog.SetDefault(logger)

		var (
			rec           metrics.Recorder = metrics.NoopRecorder{}
			metricsHandle http.Handler
		)
		if cfg.MetricsEnabled {
			prom := metrics.NewPrometheusRecorder(nil)
			rec = prom
			metricsHandle = prom.Handler()
		}

		loader, err := newLoaderFromConfig(cfg, logger, rec)
		if err != nil {
			return err
		}
		msgs, err := newMessages(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:         cfg.Port,
			ManifestPath: cfg.ManifestPath,
			AllowAll:     cfg.AllowAllOrigins,
		}, loader, msgs, logger, metricsHandle)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", slog.String("error", err.Error()))
			}
		}()

		logger.Info("abxnav server starting",
			slog.String("version", Version),
			slog.Int("port", cfg.Port),
			slog.String("content", cfg.ContentSource),
			slog.String("manifest", cfg.ManifestPath),
			slog.String("locale", msgs.Lang()),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides the config)")
	rootCmd.AddCommand(serveCmd)
}
