package analytics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

func scenarioDataset() *domain.Dataset {
	return domain.NewDataset([]domain.LaunchRecord{
		{LaunchSite: "A", PayloadMassKg: 500, BoosterCategory: "v1.0", Class: domain.OutcomeSuccess},
		{LaunchSite: "A", PayloadMassKg: 1500, BoosterCategory: "v1.1", Class: domain.OutcomeFailure},
		{LaunchSite: "B", PayloadMassKg: 3000, BoosterCategory: "FT", Class: domain.OutcomeSuccess},
	})
}

// launchDataset resembles the real launch history: every dropdown site, a
// site with no failures, and a site with no successes.
func launchDataset() *domain.Dataset {
	return domain.NewDataset([]domain.LaunchRecord{
		{LaunchSite: domain.SiteCCAFSLC40, PayloadMassKg: 0, BoosterCategory: "v1.0", Class: domain.OutcomeFailure},
		{LaunchSite: domain.SiteCCAFSLC40, PayloadMassKg: 525, BoosterCategory: "v1.0", Class: domain.OutcomeFailure},
		{LaunchSite: domain.SiteCCAFSLC40, PayloadMassKg: 677, BoosterCategory: "v1.0", Class: domain.OutcomeSuccess},
		{LaunchSite: domain.SiteVAFBSLC4E, PayloadMassKg: 500, BoosterCategory: "v1.1", Class: domain.OutcomeFailure},
		{LaunchSite: domain.SiteVAFBSLC4E, PayloadMassKg: 9600, BoosterCategory: "FT", Class: domain.OutcomeSuccess},
		{LaunchSite: domain.SiteKSCLC39A, PayloadMassKg: 2490, BoosterCategory: "FT", Class: domain.OutcomeSuccess},
		{LaunchSite: domain.SiteKSCLC39A, PayloadMassKg: 5300, BoosterCategory: "B4", Class: domain.OutcomeSuccess},
		{LaunchSite: domain.SiteCCAFSSLC40, PayloadMassKg: 4535, BoosterCategory: "v1.1", Class: domain.OutcomeFailure},
	})
}

func TestSuccessPie_Scenario(t *testing.T) {
	ds := scenarioDataset()

	all, err := SuccessPie(ds, domain.AllSites)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.PieSlice{{Label: "A", Value: 1}, {Label: "B", Value: 1}}
	if diff := cmp.Diff(want, all.Slices); diff != "" {
		t.Errorf("ALL pie mismatch (-want +got):\n%s", diff)
	}
	if all.Category != CategoryLaunchSite {
		t.Errorf("expected category %q, got %q", CategoryLaunchSite, all.Category)
	}
	if all.Title != "Total Successful Missions by Launch Site" {
		t.Errorf("unexpected title %q", all.Title)
	}

	site, err := SuccessPie(ds, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []domain.PieSlice{{Label: "Failure", Value: 1}, {Label: "Success", Value: 1}}
	if diff := cmp.Diff(want, site.Slices); diff != "" {
		t.Errorf("site pie mismatch (-want +got):\n%s", diff)
	}
	if site.Title != "Mission Outcome for Launch Site A" {
		t.Errorf("unexpected title %q", site.Title)
	}
}

func TestSuccessPie_AllSitesSumsSuccessesOnly(t *testing.T) {
	ds := launchDataset()

	pie, err := SuccessPie(ds, domain.AllSites)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	successes := 0
	for _, r := range ds.All() {
		if r.Class == domain.OutcomeSuccess {
			successes++
		}
	}
	if pie.Total() != successes {
		t.Errorf("expected total %d successes, got %d", successes, pie.Total())
	}

	// Every site is present, including one with zero successes, in name order.
	want := []domain.PieSlice{
		{Label: domain.SiteCCAFSLC40, Value: 1},
		{Label: domain.SiteCCAFSSLC40, Value: 0},
		{Label: domain.SiteKSCLC39A, Value: 2},
		{Label: domain.SiteVAFBSLC4E, Value: 1},
	}
	if diff := cmp.Diff(want, pie.Slices); diff != "" {
		t.Errorf("ALL pie mismatch (-want +got):\n%s", diff)
	}
}

func TestSuccessPie_SiteAlwaysHasBothBuckets(t *testing.T) {
	ds := launchDataset()

	tests := []struct {
		site    string
		failure int
		success int
	}{
		{domain.SiteCCAFSLC40, 2, 1},
		{domain.SiteKSCLC39A, 0, 2},
		{domain.SiteCCAFSSLC40, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.site, func(t *testing.T) {
			pie, err := SuccessPie(ds, tt.site)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pie.Slices) != 2 {
				t.Fatalf("expected 2 slices, got %d", len(pie.Slices))
			}
			if pie.Slices[0].Label != "Failure" || pie.Slices[1].Label != "Success" {
				t.Errorf("expected labels [Failure Success], got %+v", pie.Slices)
			}
			if pie.Value("Failure") != tt.failure || pie.Value("Success") != tt.success {
				t.Errorf("expected failure=%d success=%d, got %+v", tt.failure, tt.success, pie.Slices)
			}

			total := 0
			for _, r := range ds.All() {
				if r.LaunchSite == tt.site {
					total++
				}
			}
			if pie.Total() != total {
				t.Errorf("expected Failure+Success == %d, got %d", total, pie.Total())
			}
		})
	}
}

func TestSuccessPie_DropdownSiteAbsentFromDataset(t *testing.T) {
	pie, err := SuccessPie(scenarioDataset(), domain.SiteVAFBSLC4E)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.PieSlice{{Label: "Failure", Value: 0}, {Label: "Success", Value: 0}}
	if diff := cmp.Diff(want, pie.Slices); diff != "" {
		t.Errorf("pie mismatch (-want +got):\n%s", diff)
	}
}

func TestSuccessPie_InvalidSelection(t *testing.T) {
	_, err := SuccessPie(launchDataset(), "Cape Nowhere")
	if !errors.Is(err, domain.ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestPayloadScatter_Scenario(t *testing.T) {
	ds := scenarioDataset()

	site, err := PayloadScatter(ds, "A", domain.PayloadRange{Lo: 0, Hi: 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(site.Points) != 2 {
		t.Errorf("expected 2 rows for site A, got %d", len(site.Points))
	}

	low, err := PayloadScatter(ds, domain.AllSites, domain.PayloadRange{Lo: 0, Hi: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.ScatterPoint{{
		PayloadMassKg:   500,
		OutcomeLabel:    "Success",
		BoosterCategory: "v1.0",
		LaunchSite:      "A",
	}}
	if diff := cmp.Diff(want, low.Points); diff != "" {
		t.Errorf("scatter mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadScatter_FullRangeReturnsEverything(t *testing.T) {
	ds := launchDataset()
	lo, hi := ds.PayloadBounds()

	sc, err := PayloadScatter(ds, domain.AllSites, domain.PayloadRange{Lo: lo, Hi: hi})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Points) != ds.Len() {
		t.Errorf("expected %d rows, got %d", ds.Len(), len(sc.Points))
	}
	if sc.Title != "Mission Success vs Payload Mass for all Launch Sites" {
		t.Errorf("unexpected title %q", sc.Title)
	}

	// Dataset order is preserved.
	for i, r := range ds.All() {
		if sc.Points[i].PayloadMassKg != r.PayloadMassKg {
			t.Errorf("row %d: expected payload %g, got %g", i, r.PayloadMassKg, sc.Points[i].PayloadMassKg)
		}
	}
}

func TestPayloadScatter_RowsSatisfyFilter(t *testing.T) {
	ds := launchDataset()

	filters := []domain.FilterState{
		{Site: domain.AllSites, Payload: domain.PayloadRange{Lo: 500, Hi: 5000}},
		{Site: domain.SiteCCAFSLC40, Payload: domain.PayloadRange{Lo: 0, Hi: 600}},
		{Site: domain.SiteVAFBSLC4E, Payload: domain.PayloadRange{Lo: 9000, Hi: 10000}},
		{Site: domain.SiteKSCLC39A, Payload: domain.PayloadRange{Lo: 2490, Hi: 2490}},
	}

	for _, f := range filters {
		sc, err := PayloadScatter(ds, f.Site, f.Payload)
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", f, err)
		}
		if len(sc.Points) == 0 {
			t.Errorf("%+v: expected at least one row", f)
		}
		for _, p := range sc.Points {
			if f.Site != domain.AllSites && p.LaunchSite != f.Site {
				t.Errorf("%+v: row from site %q", f, p.LaunchSite)
			}
			if p.PayloadMassKg < f.Payload.Lo || p.PayloadMassKg > f.Payload.Hi {
				t.Errorf("%+v: row payload %g outside range", f, p.PayloadMassKg)
			}
		}
	}
}

func TestPayloadScatter_EmptyResultIsNotAnError(t *testing.T) {
	sc, err := PayloadScatter(launchDataset(), domain.SiteCCAFSSLC40, domain.PayloadRange{Lo: 0, Hi: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Points == nil || len(sc.Points) != 0 {
		t.Errorf("expected empty non-nil rows, got %#v", sc.Points)
	}
	if sc.Title != "Mission Success vs Payload Mass for Launch Site "+domain.SiteCCAFSSLC40 {
		t.Errorf("unexpected title %q", sc.Title)
	}
}

func TestPayloadScatter_RejectsBadInput(t *testing.T) {
	ds := launchDataset()

	if _, err := PayloadScatter(ds, "Cape Nowhere", domain.PayloadRange{Lo: 0, Hi: 10000}); !errors.Is(err, domain.ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
	if _, err := PayloadScatter(ds, domain.AllSites, domain.PayloadRange{Lo: 8000, Hi: 1000}); !errors.Is(err, domain.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestAggregators_AreIdempotent(t *testing.T) {
	ds := launchDataset()
	rng := domain.PayloadRange{Lo: 0, Hi: 6000}

	for _, site := range []string{domain.AllSites, domain.SiteCCAFSLC40, domain.SiteKSCLC39A} {
		p1, _ := SuccessPie(ds, site)
		p2, _ := SuccessPie(ds, site)
		if diff := cmp.Diff(p1, p2); diff != "" {
			t.Errorf("pie %q differs between calls:\n%s", site, diff)
		}

		s1, _ := PayloadScatter(ds, site, rng)
		s2, _ := PayloadScatter(ds, site, rng)
		if diff := cmp.Diff(s1, s2); diff != "" {
			t.Errorf("scatter %q differs between calls:\n%s", site, diff)
		}
	}

	if ds.Len() != 8 {
		t.Errorf("dataset changed size to %d", ds.Len())
	}
}
