package config

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = ".abxnav.yml"

// Config is the top-level abxnav configuration, corresponding to .abxnav.yml.
type Config struct {
	// ContentSource is a directory or an http(s) base URL holding the guide's
	// JSON resources. Resource paths are resolved against it.
	ContentSource       string    `yaml:"content_source" koanf:"content_source"`
	ManifestPath        string    `yaml:"manifest_path" koanf:"manifest_path"`
	FetchTimeoutSeconds int       `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	Port                int       `yaml:"port" koanf:"port"`
	AllowAllOrigins     bool      `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Locale              string    `yaml:"locale" koanf:"locale"`
	LogLevel            string    `yaml:"log_level" koanf:"log_level"`
	LogFormat           LogFormat `yaml:"log_format" koanf:"log_format"`
	MetricsEnabled      bool      `yaml:"metrics_enabled" koanf:"metrics_enabled"`
	Export              Export    `yaml:"export" koanf:"export"`
}

// Export holds settings for the static site export.
type Export struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Include   []string `yaml:"include" koanf:"include"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}
