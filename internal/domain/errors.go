package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSelection = errors.New("invalid site selection")
	ErrInvalidRange     = errors.New("invalid payload range")
)

// LoadError reports a dataset that could not be loaded: missing or
// unreadable source, a missing required column, or a malformed cell.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InvalidSelectionError is returned when a site outside the known set is
// passed to an aggregator.
type InvalidSelectionError struct {
	Site string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSelection, e.Site)
}

func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}
