package analytics

import (
	"sort"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

// Chart categories.
const (
	CategoryLaunchSite = "Launch Site"
	CategoryOutcome    = "Outcome"
)

// SuccessPie aggregates launches for the pie chart.
//
// For domain.AllSites it returns one slice per distinct site in the
// dataset, valued by the number of successful launches only, sorted by site
// name. For a single site it returns exactly two slices, Failure then
// Success, counting that site's launches by outcome; a missing outcome is
// reported as 0.
func SuccessPie(ds *domain.Dataset, site string) (domain.PieChart, error) {
	if err := ds.ValidateSite(site); err != nil {
		return domain.PieChart{}, err
	}

	if site == domain.AllSites {
		successes := make(map[string]int)
		for _, r := range ds.All() {
			successes[r.LaunchSite] += int(r.Class)
		}

		sites := ds.Sites()
		sort.Strings(sites)
		slices := make([]domain.PieSlice, 0, len(sites))
		for _, s := range sites {
			slices = append(slices, domain.PieSlice{Label: s, Value: successes[s]})
		}

		return domain.PieChart{
			Title:    "Total Successful Missions by Launch Site",
			Site:     site,
			Category: CategoryLaunchSite,
			Slices:   slices,
		}, nil
	}

	counts := map[domain.Outcome]int{}
	for _, r := range ds.All() {
		if r.LaunchSite == site {
			counts[r.Class]++
		}
	}

	return domain.PieChart{
		Title:    "Mission Outcome for Launch Site " + site,
		Site:     site,
		Category: CategoryOutcome,
		Slices: []domain.PieSlice{
			{Label: domain.OutcomeFailure.Label(), Value: counts[domain.OutcomeFailure]},
			{Label: domain.OutcomeSuccess.Label(), Value: counts[domain.OutcomeSuccess]},
		},
	}, nil
}

// PayloadScatter selects the launches from site (or every site for
// domain.AllSites) whose payload mass lies in rng, inclusive, preserving
// dataset order.
func PayloadScatter(ds *domain.Dataset, site string, rng domain.PayloadRange) (domain.ScatterChart, error) {
	if err := ds.ValidateSite(site); err != nil {
		return domain.ScatterChart{}, err
	}
	if err := rng.Validate(); err != nil {
		return domain.ScatterChart{}, err
	}

	title := "Mission Success vs Payload Mass for all Launch Sites"
	if site != domain.AllSites {
		title = "Mission Success vs Payload Mass for Launch Site " + site
	}

	points := []domain.ScatterPoint{}
	for _, r := range ds.All() {
		if site != domain.AllSites && r.LaunchSite != site {
			continue
		}
		if !rng.Contains(r.PayloadMassKg) {
			continue
		}
		points = append(points, domain.ScatterPoint{
			PayloadMassKg:   r.PayloadMassKg,
			OutcomeLabel:    r.OutcomeLabel,
			BoosterCategory: r.BoosterCategory,
			BoosterVersion:  r.BoosterVersion,
			LaunchSite:      r.LaunchSite,
		})
	}

	return domain.ScatterChart{
		Title:  title,
		Site:   site,
		Range:  rng,
		Points: points,
	}, nil
}
