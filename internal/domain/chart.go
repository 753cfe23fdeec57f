package domain

// PieSlice is one category of a pie aggregate.
type PieSlice struct {
	Label string
	Value int
}

// PieChart groups by launch site (AllSites) or by outcome (one site).
type PieChart struct {
	Title    string
	Site     string
	Category string // "Launch Site" or "Outcome"
	Slices   []PieSlice
}

// Total returns the sum of all slice values.
func (p PieChart) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// Value returns the count for label, or 0 when absent.
func (p PieChart) Value(label string) int {
	for _, s := range p.Slices {
		if s.Label == label {
			return s.Value
		}
	}
	return 0
}

// ScatterPoint is a launch record projected for the payload scatter chart.
type ScatterPoint struct {
	PayloadMassKg   float64
	OutcomeLabel    string
	BoosterCategory string
	BoosterVersion  string
	LaunchSite      string
}

// ScatterChart holds the filtered rows in dataset order.
type ScatterChart struct {
	Title  string
	Site   string
	Range  PayloadRange
	Points []ScatterPoint
}

// Categories returns the distinct booster categories in first-seen order.
func (s ScatterChart) Categories() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range s.Points {
		if _, ok := seen[p.BoosterCategory]; ok {
			continue
		}
		seen[p.BoosterCategory] = struct{}{}
		out = append(out, p.BoosterCategory)
	}
	return out
}
