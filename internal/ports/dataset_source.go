package ports

import (
	"context"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

// DatasetSource loads the launch dataset once at startup.
type DatasetSource interface {
	// Load reads the whole dataset. Failures are *domain.LoadError.
	Load(ctx context.Context) (*domain.Dataset, error)
}

// LaunchRepository stores launch records in the libsql database.
type LaunchRepository interface {
	// ReplaceAll swaps the stored records for ds in a single transaction.
	ReplaceAll(ctx context.Context, ds *domain.Dataset) error
	// List returns the stored records in source order.
	List(ctx context.Context) ([]domain.LaunchRecord, error)
	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}
