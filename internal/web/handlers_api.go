package web

import (
	"net/http"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

type pieSliceJSON struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type pieJSON struct {
	Title    string         `json:"title"`
	Site     string         `json:"site"`
	Category string         `json:"category"`
	Total    int            `json:"total"`
	Slices   []pieSliceJSON `json:"slices"`
}

type rangeJSON struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type scatterPointJSON struct {
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Outcome         string  `json:"outcome"`
	BoosterCategory string  `json:"booster_version_category"`
	BoosterVersion  string  `json:"booster_version,omitempty"`
	LaunchSite      string  `json:"launch_site"`
}

type scatterJSON struct {
	Title      string             `json:"title"`
	Site       string             `json:"site"`
	Range      rangeJSON          `json:"range"`
	Categories []string           `json:"categories"`
	Points     []scatterPointJSON `json:"points"`
}

type siteOptionJSON struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type datasetJSON struct {
	Records     int              `json:"records"`
	Sites       []string         `json:"sites"`
	SiteOptions []siteOptionJSON `json:"site_options"`
	Payload     rangeJSON        `json:"payload"`
	Slider      sliderJSON       `json:"slider"`
}

type sliderJSON struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Step  float64   `json:"step"`
	Value rangeJSON `json:"value"`
}

func (s *Server) handleAPIChartPie(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r, s.svc.DefaultFilter())
	if err != nil {
		writeJSONError(w, err)
		return
	}
	pie, err := s.svc.Pie(r.Context(), filter.Site)
	if err != nil {
		writeJSONError(w, err)
		return
	}

	out := pieJSON{
		Title:    pie.Title,
		Site:     pie.Site,
		Category: pie.Category,
		Total:    pie.Total(),
		Slices:   make([]pieSliceJSON, len(pie.Slices)),
	}
	for i, sl := range pie.Slices {
		out.Slices[i] = pieSliceJSON{Label: sl.Label, Value: sl.Value}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAPIChartScatter(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r, s.svc.DefaultFilter())
	if err != nil {
		writeJSONError(w, err)
		return
	}
	sc, err := s.svc.Scatter(r.Context(), filter.Site, filter.Payload)
	if err != nil {
		writeJSONError(w, err)
		return
	}

	out := scatterJSON{
		Title:      sc.Title,
		Site:       sc.Site,
		Range:      rangeJSON{Min: sc.Range.Lo, Max: sc.Range.Hi},
		Categories: sc.Categories(),
		Points:     make([]scatterPointJSON, len(sc.Points)),
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	for i, p := range sc.Points {
		out.Points[i] = scatterPointJSON{
			PayloadMassKg:   p.PayloadMassKg,
			Outcome:         p.OutcomeLabel,
			BoosterCategory: p.BoosterCategory,
			BoosterVersion:  p.BoosterVersion,
			LaunchSite:      p.LaunchSite,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAPIDataset(w http.ResponseWriter, r *http.Request) {
	ds := s.svc.Dataset()
	def := s.svc.DefaultFilter()

	out := datasetJSON{
		Records:     ds.Len(),
		Sites:       ds.Sites(),
		SiteOptions: make([]siteOptionJSON, len(domain.SiteOptions)),
		Payload:     rangeJSON{Min: def.Payload.Lo, Max: def.Payload.Hi},
		Slider: sliderJSON{
			Min:   domain.SliderMin,
			Max:   domain.SliderMax,
			Step:  domain.SliderStep,
			Value: rangeJSON{Min: def.Payload.Lo, Max: def.Payload.Hi},
		},
	}
	if out.Sites == nil {
		out.Sites = []string{}
	}
	for i, o := range domain.SiteOptions {
		out.SiteOptions[i] = siteOptionJSON{Label: o.Label, Value: o.Value}
	}
	writeJSON(w, http.StatusOK, out)
}
