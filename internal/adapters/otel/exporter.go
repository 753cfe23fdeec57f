package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/launchdash/internal/ports"
)

const (
	serviceName    = "launchdash"
	serviceVersion = "1.0.0"
)

// Exporter exports chart computation metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	requestsTotal metric.Int64Counter
	durationHist  metric.Float64Histogram
	pointsHist    metric.Int64Histogram
}

// NewExporter creates a new OTEL metrics exporter pushing over OTLP/gRPC.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	e, err := NewExporterWithReader(ctx, sdkmetric.NewPeriodicReader(exp))
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(e.provider)
	return e, nil
}

// NewExporterWithReader builds the instruments on a meter provider fed by reader.
func NewExporterWithReader(ctx context.Context, reader sdkmetric.Reader) (*Exporter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	meter := provider.Meter(serviceName)

	requestsTotal, err := meter.Int64Counter(
		"launchdash_chart_requests_total",
		metric.WithDescription("Chart computations by chart, site and status"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating requests counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"launchdash_chart_duration_seconds",
		metric.WithDescription("Time spent computing chart data"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	pointsHist, err := meter.Int64Histogram(
		"launchdash_chart_points",
		metric.WithDescription("Slices or points produced per chart"),
		metric.WithUnit("{point}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating points histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		requestsTotal: requestsTotal,
		durationHist:  durationHist,
		pointsHist:    pointsHist,
	}, nil
}

// RecordChart records one chart computation.
func (e *Exporter) RecordChart(ctx context.Context, ev ports.ChartEvent) {
	status := "ok"
	if ev.Err != nil {
		status = "error"
	}
	opt := metric.WithAttributes(
		attribute.String("chart", ev.Chart),
		attribute.String("site", ev.Site),
		attribute.String("status", status),
	)

	e.requestsTotal.Add(ctx, 1, opt)
	e.durationHist.Record(ctx, ev.Duration.Seconds(), opt)
	if ev.Err == nil {
		e.pointsHist.Record(ctx, int64(ev.Points), opt)
	}
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
