package domain

import (
	"iter"
	"slices"
)

// Outcome is the binary result of a launch attempt, stored as the source
// `class` column (1 = success, 0 = failure).
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Outcome labels as shown on the charts.
const (
	LabelFailure = "Failure"
	LabelSuccess = "Success"
)

// Label returns "Success" for OutcomeSuccess and "Failure" otherwise.
func (o Outcome) Label() string {
	if o == OutcomeFailure {
		return LabelFailure
	}
	return LabelSuccess
}

// LaunchRecord is one launch attempt.
type LaunchRecord struct {
	LaunchSite      string
	PayloadMassKg   float64
	BoosterVersion  string // optional in the source file
	BoosterCategory string
	Class           Outcome
	OutcomeLabel    string // derived once at load time from Class
}

// Dataset is an ordered, immutable collection of launch records.
// It is safe to share between goroutines.
type Dataset struct {
	records    []LaunchRecord
	minPayload float64
	maxPayload float64
	sites      []string
}

// NewDataset builds a Dataset from records in source order. The outcome
// label of every record is derived from its class, and payload bounds and
// the distinct site list are computed once.
func NewDataset(records []LaunchRecord) *Dataset {
	ds := &Dataset{records: make([]LaunchRecord, len(records))}
	seen := make(map[string]struct{})
	for i, r := range records {
		r.OutcomeLabel = r.Class.Label()
		ds.records[i] = r

		if i == 0 || r.PayloadMassKg < ds.minPayload {
			ds.minPayload = r.PayloadMassKg
		}
		if i == 0 || r.PayloadMassKg > ds.maxPayload {
			ds.maxPayload = r.PayloadMassKg
		}
		if _, ok := seen[r.LaunchSite]; !ok {
			seen[r.LaunchSite] = struct{}{}
			ds.sites = append(ds.sites, r.LaunchSite)
		}
	}
	return ds
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// All iterates records in source order.
func (d *Dataset) All() iter.Seq2[int, LaunchRecord] {
	return func(yield func(int, LaunchRecord) bool) {
		for i, r := range d.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Records returns a copy of the records in source order.
func (d *Dataset) Records() []LaunchRecord {
	return slices.Clone(d.records)
}

// PayloadBounds returns the minimum and maximum payload mass over the whole
// dataset. An empty dataset reports (0, 0).
func (d *Dataset) PayloadBounds() (lo, hi float64) {
	return d.minPayload, d.maxPayload
}

// Sites returns the distinct launch sites in first-seen order.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.sites)
}

// HasSite reports whether at least one record was launched from site.
func (d *Dataset) HasSite(site string) bool {
	return slices.Contains(d.sites, site)
}
