package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/launchdash/internal/adapters/csvfile"
	"github.com/emiliopalmerini/launchdash/internal/adapters/turso"
	"github.com/emiliopalmerini/launchdash/internal/migrate"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a launch CSV into the libsql database",
	Long: `Replace the launches stored in the libsql database with the rows of a CSV file.
The schema is migrated first. Serve the stored copy with --source libsql.

Examples:
  launchdash import --csv spacex_launch_dash.csv`,
	RunE: runImport,
}

var importCSV string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importCSV, "csv", "", "CSV file to import (required)")
	_ = importCmd.MarkFlagRequired("csv")
}

func runImport(cmd *cobra.Command, args []string) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("LAUNCHDASH_DATABASE_URL is required for import")
	}
	db, err := turso.NewDB(cfg.DatabaseURL, cfg.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	n, err := importDataset(cmd.Context(), db.DB, importCSV)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d launches from %s\n", n, importCSV)
	return nil
}

// importDataset migrates db and replaces its launches with the rows of path.
func importDataset(ctx context.Context, db *sql.DB, path string) (int, error) {
	ds, err := csvfile.NewSource(path).Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := migrate.RunAll(ctx, db); err != nil {
		return 0, fmt.Errorf("failed to migrate database: %w", err)
	}
	repos := turso.NewRepositories(db)
	if err := repos.Launches.ReplaceAll(ctx, ds); err != nil {
		return 0, err
	}
	return ds.Len(), nil
}
