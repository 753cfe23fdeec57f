package turso

import (
	"context"

	"github.com/emiliopalmerini/launchdash/internal/domain"
	"github.com/emiliopalmerini/launchdash/internal/ports"
)

// LaunchSource serves the dataset stored in the launches table.
type LaunchSource struct {
	repo ports.LaunchRepository
	name string
}

func NewLaunchSource(repo ports.LaunchRepository, name string) *LaunchSource {
	return &LaunchSource{repo: repo, name: name}
}

func (s *LaunchSource) Load(ctx context.Context) (*domain.Dataset, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, &domain.LoadError{Source: s.name, Err: err}
	}
	return domain.NewDataset(records), nil
}
