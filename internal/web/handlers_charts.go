package web

import (
	"net/http"

	"github.com/emiliopalmerini/launchdash/internal/shared/middleware"
	"github.com/emiliopalmerini/launchdash/internal/web/templates"
)

func (s *Server) handleChartPie(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r, s.svc.DefaultFilter())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	panel, err := s.piePanel(r.Context(), filter.Site)
	s.writeChart(w, r, panel, err)
}

func (s *Server) handleChartScatter(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r, s.svc.DefaultFilter())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	panel, err := s.scatterPanel(r.Context(), filter)
	s.writeChart(w, r, panel, err)
}

// writeChart answers htmx with the panel body and everyone else with the
// bare SVG document.
func (s *Server) writeChart(w http.ResponseWriter, r *http.Request, panel templates.ChartPanel, err error) {
	if middleware.IsHTMX(r) {
		status := http.StatusOK
		if err != nil {
			status = statusFor(err)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_ = templates.ChartBody(panel).Render(r.Context(), w)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(panel.SVG)
}
