package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

func TestPieSVG(t *testing.T) {
	p := domain.PieChart{
		Title:    "Total Successful Missions by Launch Site",
		Site:     domain.AllSites,
		Category: "Launch Site",
		Slices: []domain.PieSlice{
			{Label: domain.SiteCCAFSLC40, Value: 7},
			{Label: domain.SiteCCAFSSLC40, Value: 0},
			{Label: domain.SiteKSCLC39A, Value: 10},
		},
	}

	svg, err := PieSVG(p, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(svg), []byte("<svg")) {
		t.Errorf("expected an svg document, got %.60q", svg)
	}
	if bytes.Contains(svg, []byte(EmptyMessage)) {
		t.Error("did not expect the empty state")
	}
}

func TestPieSVG_SingleSlice(t *testing.T) {
	p := domain.PieChart{
		Title:  "Mission Outcome for Launch Site KSC LC-39A",
		Slices: []domain.PieSlice{{Label: domain.LabelFailure, Value: 0}, {Label: domain.LabelSuccess, Value: 3}},
	}
	if _, err := PieSVG(p, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPieSVG_ZeroTotalIsEmptyState(t *testing.T) {
	p := domain.PieChart{
		Title:  "Mission Outcome for Launch Site VAFB SLC-4E",
		Slices: []domain.PieSlice{{Label: domain.LabelFailure}, {Label: domain.LabelSuccess}},
	}

	svg, err := PieSVG(p, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(svg), EmptyMessage) {
		t.Error("expected the empty state message")
	}
	if !strings.Contains(string(svg), "VAFB SLC-4E") {
		t.Error("expected the chart title in the empty state")
	}
}

func TestScatterSVG(t *testing.T) {
	s := domain.ScatterChart{
		Title: "Mission Success vs Payload Mass for all Launch Sites",
		Site:  domain.AllSites,
		Range: domain.PayloadRange{Lo: 0, Hi: 10000},
		Points: []domain.ScatterPoint{
			{PayloadMassKg: 500, OutcomeLabel: domain.LabelFailure, BoosterCategory: "v1.1"},
			{PayloadMassKg: 2490, OutcomeLabel: domain.LabelSuccess, BoosterCategory: "FT"},
			{PayloadMassKg: 9600, OutcomeLabel: domain.LabelSuccess, BoosterCategory: "FT"},
		},
	}

	svg, err := ScatterSVG(s, Options{Width: 800, Height: 400})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, "<svg") {
		t.Errorf("expected an svg document")
	}
	for _, want := range []string{"FT", "v1.1", domain.LabelSuccess, domain.LabelFailure} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in rendered chart", want)
		}
	}
}

func TestScatterSVG_DegenerateRange(t *testing.T) {
	s := domain.ScatterChart{
		Title:  "Mission Success vs Payload Mass for Launch Site KSC LC-39A",
		Range:  domain.PayloadRange{Lo: 2490, Hi: 2490},
		Points: []domain.ScatterPoint{{PayloadMassKg: 2490, OutcomeLabel: domain.LabelSuccess, BoosterCategory: "FT"}},
	}
	if _, err := ScatterSVG(s, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestScatterSVG_NoPointsIsEmptyState(t *testing.T) {
	s := domain.ScatterChart{
		Title:  "Mission Success vs Payload Mass for Launch Site <CCAFS>",
		Range:  domain.PayloadRange{Lo: 0, Hi: 1000},
		Points: []domain.ScatterPoint{},
	}

	svg, err := ScatterSVG(s, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, EmptyMessage) {
		t.Error("expected the empty state message")
	}
	if !strings.Contains(out, "&lt;CCAFS&gt;") {
		t.Errorf("expected escaped title, got %s", out)
	}
}

func TestAxisRange(t *testing.T) {
	tests := []struct {
		in     domain.PayloadRange
		lo, hi float64
	}{
		{domain.PayloadRange{Lo: 0, Hi: 10000}, 0, 10000},
		{domain.PayloadRange{Lo: 500, Hi: 500}, 499, 501},
	}
	for _, tt := range tests {
		lo, hi := axisRange(tt.in)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("axisRange(%+v) = [%g, %g], want [%g, %g]", tt.in, lo, hi, tt.lo, tt.hi)
		}
	}
}
