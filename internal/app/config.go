package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/launchdash/internal/logging"
)

// EnvPrefix is prepended to every configuration variable.
const EnvPrefix = "LAUNCHDASH"

// SourceKind identifies where the launch dataset is read from.
type SourceKind string

const (
	SourceFile   SourceKind = "file"
	SourceS3     SourceKind = "s3"
	SourceLibSQL SourceKind = "libsql"
)

type Config struct {
	DataSource      string        `envconfig:"DATA_SOURCE" default:"spacex_launch_dash.csv"`
	Addr            string        `envconfig:"ADDR" default:":8050"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	DatabaseURL string `envconfig:"DATABASE_URL"`
	AuthToken   string `envconfig:"AUTH_TOKEN"`

	S3Region   string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Endpoint string `envconfig:"S3_ENDPOINT"`

	OTelEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTelEndpoint string `envconfig:"OTEL_ENDPOINT"`
	OTelInsecure bool   `envconfig:"OTEL_INSECURE" default:"false"`
}

// Load reads configuration from LAUNCHDASH_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks combinations envconfig cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataSource) == "" {
		return fmt.Errorf("%s_DATA_SOURCE must not be empty", EnvPrefix)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%s_SHUTDOWN_TIMEOUT must be positive, got %s", EnvPrefix, c.ShutdownTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%s_LOG_FORMAT must be text or json, got %q", EnvPrefix, c.LogFormat)
	}
	if c.SourceKind() == SourceLibSQL && c.DatabaseURL == "" {
		return fmt.Errorf("%s_DATABASE_URL is required when the data source is libsql", EnvPrefix)
	}
	if c.OTelEnabled && c.OTelEndpoint == "" {
		return fmt.Errorf("%s_OTEL_ENDPOINT is required when OTEL is enabled", EnvPrefix)
	}
	return nil
}

// SourceKind classifies DataSource.
func (c *Config) SourceKind() SourceKind {
	switch {
	case c.DataSource == string(SourceLibSQL):
		return SourceLibSQL
	case strings.HasPrefix(c.DataSource, "s3://"):
		return SourceS3
	default:
		return SourceFile
	}
}
