package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

const (
	insertLaunchSQL = `INSERT INTO launches (position, launch_site, payload_mass_kg, booster_version, booster_version_category, class) VALUES (?, ?, ?, ?, ?, ?)`
	listLaunchesSQL = `SELECT launch_site, payload_mass_kg, booster_version, booster_version_category, class FROM launches ORDER BY position`
	countLaunchSQL  = `SELECT COUNT(*) FROM launches`
)

type LaunchRepository struct {
	db *sql.DB
}

func NewLaunchRepository(db *sql.DB) *LaunchRepository {
	return &LaunchRepository{db: db}
}

// ReplaceAll deletes every stored launch and inserts ds in source order.
func (r *LaunchRepository) ReplaceAll(ctx context.Context, ds *domain.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM launches`); err != nil {
		return fmt.Errorf("failed to clear launches: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertLaunchSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, rec := range ds.All() {
		if _, err := stmt.ExecContext(ctx, i, rec.LaunchSite, rec.PayloadMassKg, rec.BoosterVersion, rec.BoosterCategory, int(rec.Class)); err != nil {
			return fmt.Errorf("failed to insert launch %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit launches: %w", err)
	}
	return nil
}

func (r *LaunchRepository) List(ctx context.Context) ([]domain.LaunchRecord, error) {
	rows, err := r.db.QueryContext(ctx, listLaunchesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list launches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.LaunchRecord
	for rows.Next() {
		var (
			rec   domain.LaunchRecord
			class int
		)
		if err := rows.Scan(&rec.LaunchSite, &rec.PayloadMassKg, &rec.BoosterVersion, &rec.BoosterCategory, &class); err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		if class != int(domain.OutcomeFailure) && class != int(domain.OutcomeSuccess) {
			return nil, fmt.Errorf("launch at %s has class %d, want 0 or 1", rec.LaunchSite, class)
		}
		rec.Class = domain.Outcome(class)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate launches: %w", err)
	}
	return records, nil
}

func (r *LaunchRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countLaunchSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count launches: %w", err)
	}
	return n, nil
}
