package domain

import (
	"fmt"
	"math"
)

// Bounds of the payload range control.
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Lo float64
	Hi float64
}

// Contains reports whether lo <= kg <= hi.
func (r PayloadRange) Contains(kg float64) bool {
	return kg >= r.Lo && kg <= r.Hi
}

// Validate rejects non-finite bounds and lo > hi.
func (r PayloadRange) Validate() error {
	if math.IsNaN(r.Lo) || math.IsNaN(r.Hi) || math.IsInf(r.Lo, 0) || math.IsInf(r.Hi, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if r.Lo > r.Hi {
		return fmt.Errorf("%w: %g > %g", ErrInvalidRange, r.Lo, r.Hi)
	}
	return nil
}

// FilterState is the user-selected site and payload range driving both
// charts. It lives for the duration of a dashboard session.
type FilterState struct {
	Site    string
	Payload PayloadRange
}

// DefaultFilter selects all sites and the full payload range of ds.
func DefaultFilter(ds *Dataset) FilterState {
	lo, hi := ds.PayloadBounds()
	return FilterState{
		Site:    AllSites,
		Payload: PayloadRange{Lo: lo, Hi: hi},
	}
}
