package web

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/launchdash/internal/domain"
	"github.com/emiliopalmerini/launchdash/internal/render"
	"github.com/emiliopalmerini/launchdash/internal/web/templates"
)

const (
	pageHeading       = "SpaceX Launch Records Dashboard"
	sitePlaceholder   = "Select a Launch Site Here"
	payloadRangeLabel = "Payload range (Kg):"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, err := parseFilter(r, s.svc.DefaultFilter())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	page, err := s.buildDashboard(ctx, filter)
	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = templates.Dashboard(page).Render(ctx, w)
}

// buildDashboard computes both charts concurrently. A chart that fails is
// rendered as an error panel; the first such error is returned.
func (s *Server) buildDashboard(ctx context.Context, filter domain.FilterState) (templates.DashboardPage, error) {
	page := templates.DashboardPage{
		Heading:     pageHeading,
		Placeholder: sitePlaceholder,
		SliderLabel: payloadRangeLabel,
		Sites:       siteOptions(filter.Site),
		Slider:      sliderState(filter.Payload),
	}

	// Each goroutine writes only its own panel and error.
	var pieErr, scatterErr error
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page.Pie, pieErr = s.piePanel(gctx, filter.Site)
		return nil
	})

	g.Go(func() error {
		page.Scatter, scatterErr = s.scatterPanel(gctx, filter)
		return nil
	})

	_ = g.Wait()

	if pieErr != nil {
		return page, pieErr
	}
	return page, scatterErr
}

func (s *Server) piePanel(ctx context.Context, site string) (templates.ChartPanel, error) {
	panel := templates.ChartPanel{ID: templates.PieChartID}
	pie, err := s.svc.Pie(ctx, site)
	if err != nil {
		panel.Error = err.Error()
		return panel, err
	}
	panel.Title = pie.Title
	if panel.SVG, err = render.PieSVG(pie, s.chartOpts); err != nil {
		panel.Error = err.Error()
		return panel, err
	}
	return panel, nil
}

func (s *Server) scatterPanel(ctx context.Context, filter domain.FilterState) (templates.ChartPanel, error) {
	panel := templates.ChartPanel{ID: templates.ScatterChartID}
	sc, err := s.svc.Scatter(ctx, filter.Site, filter.Payload)
	if err != nil {
		panel.Error = err.Error()
		return panel, err
	}
	panel.Title = sc.Title
	if panel.SVG, err = render.ScatterSVG(sc, s.chartOpts); err != nil {
		panel.Error = err.Error()
		return panel, err
	}
	return panel, nil
}

// siteOptions lists the fixed dropdown entries. A dataset-only site passed
// in the query stays valid but leaves no entry selected.
func siteOptions(selected string) []templates.SiteOption {
	opts := make([]templates.SiteOption, 0, len(domain.SiteOptions))
	for _, o := range domain.SiteOptions {
		opts = append(opts, templates.SiteOption{Label: o.Label, Value: o.Value, Selected: o.Value == selected})
	}
	return opts
}

func sliderState(rng domain.PayloadRange) templates.SliderState {
	marks := make([]float64, 0, (domain.SliderMax-domain.SliderMin)/domain.SliderStep+1)
	for m := domain.SliderMin; m <= domain.SliderMax; m += domain.SliderStep {
		marks = append(marks, float64(m))
	}
	return templates.SliderState{
		Min:   domain.SliderMin,
		Max:   domain.SliderMax,
		Step:  domain.SliderStep,
		Lo:    rng.Lo,
		Hi:    rng.Hi,
		Marks: marks,
	}
}
