package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emiliopalmerini/launchdash/internal/adapters/csvfile"
	"github.com/emiliopalmerini/launchdash/internal/adapters/otel"
	"github.com/emiliopalmerini/launchdash/internal/adapters/storage"
	"github.com/emiliopalmerini/launchdash/internal/adapters/turso"
	"github.com/emiliopalmerini/launchdash/internal/domain"
	"github.com/emiliopalmerini/launchdash/internal/logging"
	"github.com/emiliopalmerini/launchdash/internal/ports"
)

// InitLogging installs the configured slog handler as the default.
func InitLogging(cfg *Config) {
	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Init(level, cfg.LogFormat)
}

// OpenSource returns the dataset source selected by cfg and a function that
// releases whatever it holds open.
func OpenSource(ctx context.Context, cfg *Config) (ports.DatasetSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.SourceKind() {
	case SourceS3:
		src, err := storage.NewS3Source(ctx, cfg.DataSource, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			return nil, nil, err
		}
		return src, noop, nil
	case SourceLibSQL:
		db, err := turso.NewDB(cfg.DatabaseURL, cfg.AuthToken)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		repos := turso.NewRepositories(db.DB)
		return turso.NewLaunchSource(repos.Launches, "libsql"), db.Close, nil
	default:
		return csvfile.NewSource(cfg.DataSource), noop, nil
	}
}

// LoadDataset opens the configured source and reads the dataset once.
func LoadDataset(ctx context.Context, cfg *Config) (*domain.Dataset, error) {
	src, closeFn, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeFn() }()

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	lo, hi := ds.PayloadBounds()
	logging.New("app").Info("dataset loaded",
		"source", cfg.DataSource,
		"records", ds.Len(),
		"sites", len(ds.Sites()),
		"payload_min", lo,
		"payload_max", hi,
	)
	return ds, nil
}

// NewMetricsExporter returns the OTLP exporter when enabled, falling back to
// a no-op exporter when disabled or unreachable.
func NewMetricsExporter(ctx context.Context, cfg *Config) ports.MetricsExporter {
	if !cfg.OTelEnabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, otel.Config{
		Endpoint: cfg.OTelEndpoint,
		Enabled:  cfg.OTelEnabled,
		Insecure: cfg.OTelInsecure,
	})
	if err != nil {
		slog.Warn("metrics exporter unavailable, continuing without metrics", "error", err)
		return otel.NewNoOpExporter()
	}
	return exp
}
