package ports

import (
	"context"
	"time"
)

// MetricsExporter exports chart computation metrics to an external observability system.
type MetricsExporter interface {
	// RecordChart records one chart computation.
	RecordChart(ctx context.Context, e ChartEvent)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// ChartEvent describes a single aggregator call.
type ChartEvent struct {
	Chart    string // "pie" or "scatter"
	Site     string
	Points   int
	Duration time.Duration
	Err      error
}
