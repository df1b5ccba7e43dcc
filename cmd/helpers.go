package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ziadkadry99/abx-navigator/internal/config"
	"github.com/ziadkadry99/abx-navigator/internal/content"
	"github.com/ziadkadry99/abx-navigator/internal/i18n"
	"github.com/ziadkadry99/abx-navigator/internal/metrics"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `abxnav init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs always go to stderr so stdout
// stays free for rendered output and the MCP protocol.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := parseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLoaderFromConfig creates the content loader for the configured source.
func newLoaderFromConfig(cfg *config.Config, logger *slog.Logger, rec metrics.Recorder) (*content.Loader, error) {
	fetcher, err := content.NewFetcher(cfg.ContentSource, cfg.FetchTimeout())
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return content.NewLoader(fetcher, content.WithLogger(logger), content.WithRecorder(rec)), nil
}

func newMessages(cfg *config.Config) (*i18n.Messages, error) {
	msgs, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	return msgs, nil
}
