package config

import "github.com/ziadkadry99/abx-navigator/internal/navigator"

// DefaultExcludes are resource globs skipped by the static export.
var DefaultExcludes = []string{
	"**/*.draft.json",
	"**/.*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentSource:       ".",
		ManifestPath:        navigator.DefaultManifestPath,
		FetchTimeoutSeconds: 10,
		Port:                8080,
		Locale:              "ja",
		LogLevel:            "info",
		LogFormat:           LogFormatText,
		MetricsEnabled:      true,
		Export: Export{
			OutputDir: "site",
			Include:   []string{"**"},
			Exclude:   DefaultExcludes,
		},
	}
}
