package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/emiliopalmerini/launchdash/internal/domain"
	"github.com/emiliopalmerini/launchdash/internal/ports"
)

type recordingExporter struct {
	mu     sync.Mutex
	events []ports.ChartEvent
}

func (e *recordingExporter) RecordChart(ctx context.Context, ev ports.ChartEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *recordingExporter) Close(ctx context.Context) error { return nil }

func TestService_RecordsEveryComputation(t *testing.T) {
	exp := &recordingExporter{}
	svc := NewService(launchDataset(), exp, nil)
	ctx := context.Background()

	if _, err := svc.Pie(ctx, domain.AllSites); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Scatter(ctx, domain.SiteKSCLC39A, domain.PayloadRange{Lo: 0, Hi: 10000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Pie(ctx, "Cape Nowhere"); err == nil {
		t.Fatal("expected error for unknown site")
	}

	if len(exp.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(exp.events))
	}
	if exp.events[0].Chart != "pie" || exp.events[0].Points != 4 {
		t.Errorf("unexpected pie event %+v", exp.events[0])
	}
	if exp.events[1].Chart != "scatter" || exp.events[1].Points != 2 || exp.events[1].Site != domain.SiteKSCLC39A {
		t.Errorf("unexpected scatter event %+v", exp.events[1])
	}
	if !errors.Is(exp.events[2].Err, domain.ErrInvalidSelection) {
		t.Errorf("expected failed event to carry ErrInvalidSelection, got %v", exp.events[2].Err)
	}
}

func TestService_DefaultFilterUsesDatasetBounds(t *testing.T) {
	svc := NewService(launchDataset(), nil, nil)

	f := svc.DefaultFilter()
	if f.Site != domain.AllSites || f.Payload.Lo != 0 || f.Payload.Hi != 9600 {
		t.Errorf("unexpected default filter %+v", f)
	}
}

func TestService_ConcurrentCharts(t *testing.T) {
	svc := NewService(launchDataset(), &recordingExporter{}, nil)
	ctx := context.Background()

	want, _ := svc.Scatter(ctx, domain.AllSites, domain.PayloadRange{Lo: 0, Hi: 10000})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := svc.Pie(ctx, domain.SiteCCAFSLC40); err != nil {
				t.Errorf("pie: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			got, err := svc.Scatter(ctx, domain.AllSites, domain.PayloadRange{Lo: 0, Hi: 10000})
			if err != nil {
				t.Errorf("scatter: %v", err)
				return
			}
			if len(got.Points) != len(want.Points) {
				t.Errorf("expected %d points, got %d", len(want.Points), len(got.Points))
			}
		}()
	}
	wg.Wait()
}
