package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/launchdash/internal/adapters/turso"
	"github.com/emiliopalmerini/launchdash/internal/migrate"
	"github.com/emiliopalmerini/launchdash/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  launchdash migrate      # Run all pending migrations
  launchdash migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	target := -1
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		target = v
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("LAUNCHDASH_DATABASE_URL is required for migrate")
	}
	db, err := turso.NewDB(cfg.DatabaseURL, cfg.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	all, err := migrate.Load(migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := migrate.To(ctx, db.DB, all, target)
	if err != nil {
		return err
	}
	version, _, err := migrate.CurrentVersion(ctx, db.DB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if applied == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Already at version %d\n", version)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s), now at version %d\n", applied, version)
	return nil
}
