package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/emiliopalmerini/launchdash/internal/domain"
	"github.com/emiliopalmerini/launchdash/internal/ports"
)

// Service serves chart data from a loaded dataset and records a metric for
// every computation. It holds no mutable state and is safe for concurrent use.
type Service struct {
	dataset  *domain.Dataset
	exporter ports.MetricsExporter
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new analytics service
func NewService(ds *domain.Dataset, exporter ports.MetricsExporter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		dataset:  ds,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Dataset returns the dataset the service reads from.
func (s *Service) Dataset() *domain.Dataset {
	return s.dataset
}

// DefaultFilter returns the filter the dashboard starts with.
func (s *Service) DefaultFilter() domain.FilterState {
	return domain.DefaultFilter(s.dataset)
}

// Pie returns the pie aggregate for site.
func (s *Service) Pie(ctx context.Context, site string) (domain.PieChart, error) {
	start := s.now()
	pie, err := SuccessPie(s.dataset, site)
	s.record(ctx, "pie", site, len(pie.Slices), start, err)
	return pie, err
}

// Scatter returns the scatter rows for site and rng.
func (s *Service) Scatter(ctx context.Context, site string, rng domain.PayloadRange) (domain.ScatterChart, error) {
	start := s.now()
	scatter, err := PayloadScatter(s.dataset, site, rng)
	s.record(ctx, "scatter", site, len(scatter.Points), start, err)
	return scatter, err
}

func (s *Service) record(ctx context.Context, chart, site string, points int, start time.Time, err error) {
	elapsed := s.now().Sub(start)
	if err != nil {
		s.logger.Warn("chart computation rejected", "chart", chart, "site", site, "error", err)
	} else {
		s.logger.Debug("chart computed", "chart", chart, "site", site, "points", points, "duration", elapsed)
	}
	if s.exporter != nil {
		s.exporter.RecordChart(ctx, ports.ChartEvent{
			Chart:    chart,
			Site:     site,
			Points:   points,
			Duration: elapsed,
			Err:      err,
		})
	}
}
