package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/launchdash/internal/ports"
)

func TestNewExporter_DisabledConfig(t *testing.T) {
	if _, err := NewExporter(context.Background(), Config{Enabled: false, Endpoint: "localhost:4317"}); err == nil {
		t.Error("expected error for disabled exporter")
	}
	if _, err := NewExporter(context.Background(), Config{Enabled: true}); err == nil {
		t.Error("expected error for missing endpoint")
	}
}

func TestExporter_RecordChart(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	exp, err := NewExporterWithReader(ctx, reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = exp.Close(ctx) })

	exp.RecordChart(ctx, ports.ChartEvent{Chart: "pie", Site: "ALL", Points: 4, Duration: time.Millisecond})
	exp.RecordChart(ctx, ports.ChartEvent{Chart: "pie", Site: "ALL", Points: 4, Duration: time.Millisecond})
	exp.RecordChart(ctx, ports.ChartEvent{Chart: "scatter", Site: "Nowhere", Err: errors.New("invalid site selection")})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect failed: %v", err)
	}

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "launchdash_chart_requests_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				chart, _ := dp.Attributes.Value(attribute.Key("chart"))
				status, _ := dp.Attributes.Value(attribute.Key("status"))
				counts[chart.AsString()+"/"+status.AsString()] += dp.Value
			}
		}
	}

	if counts["pie/ok"] != 2 {
		t.Errorf("expected 2 successful pie requests, got %d", counts["pie/ok"])
	}
	if counts["scatter/error"] != 1 {
		t.Errorf("expected 1 failed scatter request, got %d", counts["scatter/error"])
	}
}

func TestNoOpExporter(t *testing.T) {
	var exp ports.MetricsExporter = NewNoOpExporter()
	exp.RecordChart(context.Background(), ports.ChartEvent{Chart: "pie"})
	if err := exp.Close(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
