// Package render draws dashboard charts as SVG documents.
package render

import (
	"bytes"
	"fmt"
	"html"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

// EmptyMessage is shown in place of a chart with nothing to draw.
const EmptyMessage = "No launches match the current selection"

// Options sizes the rendered chart.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions matches the dashboard panel size.
var DefaultOptions = Options{Width: 720, Height: 440}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	return o
}

var palette = []drawing.Color{
	drawing.ColorFromHex("636EFA"),
	drawing.ColorFromHex("EF553B"),
	drawing.ColorFromHex("00CC96"),
	drawing.ColorFromHex("AB63FA"),
	drawing.ColorFromHex("FFA15A"),
	drawing.ColorFromHex("19D3F3"),
	drawing.ColorFromHex("FF6692"),
	drawing.ColorFromHex("B6E880"),
}

func colorAt(i int) drawing.Color {
	return palette[i%len(palette)]
}

// PieSVG renders p. A pie whose slices are all zero renders the empty state.
func PieSVG(p domain.PieChart, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if p.Total() == 0 {
		return EmptySVG(p.Title, opts), nil
	}

	values := make([]chart.Value, 0, len(p.Slices))
	for i, s := range p.Slices {
		// go-chart cannot draw zero-width wedges.
		if s.Value == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
			Value: float64(s.Value),
			Style: chart.Style{FillColor: colorAt(i), StrokeColor: drawing.ColorWhite, StrokeWidth: 1},
		})
	}

	pie := chart.PieChart{
		Title:  p.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// ScatterSVG renders s with one series per booster category. Outcomes sit on
// the y axis at 0 (Failure) and 1 (Success).
func ScatterSVG(s domain.ScatterChart, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if len(s.Points) == 0 {
		return EmptySVG(s.Title, opts), nil
	}

	categories := s.Categories()
	byCategory := make(map[string]*chart.ContinuousSeries, len(categories))
	series := make([]chart.Series, 0, len(categories))
	for i, c := range categories {
		cs := &chart.ContinuousSeries{
			Name: c,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    colorAt(i),
			},
		}
		byCategory[c] = cs
	}
	for _, p := range s.Points {
		cs := byCategory[p.BoosterCategory]
		cs.XValues = append(cs.XValues, p.PayloadMassKg)
		cs.YValues = append(cs.YValues, outcomeY(p.OutcomeLabel))
	}
	for _, c := range categories {
		series = append(series, *byCategory[c])
	}

	lo, hi := axisRange(s.Range)
	ch := chart.Chart{
		Title:      s.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		YAxis: chart.YAxis{
			Name:  "class",
			Range: &chart.ContinuousRange{Min: -0.5, Max: 1.5},
			Ticks: []chart.Tick{
				{Value: 0, Label: domain.LabelFailure},
				{Value: 1, Label: domain.LabelSuccess},
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter chart: %w", err)
	}
	return buf.Bytes(), nil
}

func outcomeY(label string) float64 {
	if label == domain.LabelSuccess {
		return 1
	}
	return 0
}

// axisRange widens a degenerate range so the axis has a non-zero span. The
// filtered rows are not affected.
func axisRange(r domain.PayloadRange) (float64, float64) {
	if r.Hi > r.Lo {
		return r.Lo, r.Hi
	}
	return r.Lo - 1, r.Hi + 1
}

// EmptySVG returns a placeholder document carrying title and EmptyMessage.
func EmptySVG(title string, opts Options) []byte {
	opts = opts.withDefaults()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" class="chart-empty">`,
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(&buf, `<text x="%d" y="32" text-anchor="middle" font-size="16" font-weight="bold">%s</text>`,
		opts.Width/2, html.EscapeString(title))
	fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="middle" font-size="14" fill="#6B7280">%s</text>`,
		opts.Width/2, opts.Height/2, EmptyMessage)
	buf.WriteString(`</svg>`)
	return buf.Bytes()
}
