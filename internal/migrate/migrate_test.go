package migrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/launchdash/migrations"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("libsql", "file:"+filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_SortsAndPairsDownFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_index.up.sql":  {Data: []byte("CREATE INDEX i ON t (a)")},
		"001_create_t.up.sql":   {Data: []byte("CREATE TABLE t (a INTEGER)")},
		"001_create_t.down.sql": {Data: []byte("DROP TABLE t")},
		"README.md":             {Data: []byte("ignored")},
	}

	all, err := Load(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(all))
	}
	if all[0].Version != 1 || all[0].Name != "create_t" || all[0].DownSQL != "DROP TABLE t" {
		t.Errorf("unexpected first migration %+v", all[0])
	}
	if all[1].Version != 2 || all[1].DownSQL != "" {
		t.Errorf("unexpected second migration %+v", all[1])
	}
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	all, err := Load(migrations.FS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) == 0 || all[0].Name != "create_launches" {
		t.Errorf("expected create_launches migration, got %+v", all)
	}
}

func TestRunAll_UpAndDown(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	if err := RunAll(ctx, db); err != nil {
		t.Fatalf("RunAll failed: %v", err)
	}
	// Idempotent.
	if err := RunAll(ctx, db); err != nil {
		t.Fatalf("second RunAll failed: %v", err)
	}

	version, dirty, err := CurrentVersion(ctx, db)
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 || dirty {
		t.Errorf("expected clean version 1, got %d dirty=%v", version, dirty)
	}

	if _, err := db.ExecContext(ctx, `INSERT INTO launches (position, launch_site, payload_mass_kg, booster_version_category, class) VALUES (0, 'A', 10, 'FT', 1)`); err != nil {
		t.Fatalf("insert into launches failed: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO launches (position, launch_site, payload_mass_kg, booster_version_category, class) VALUES (1, 'A', 10, 'FT', 2)`); err == nil {
		t.Error("expected class check constraint to reject 2")
	}

	all, _ := Load(migrations.FS)
	applied, err := To(ctx, db, all, 0)
	if err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("expected 1 down migration, got %d", applied)
	}
	if version, _, _ := CurrentVersion(ctx, db); version != 0 {
		t.Errorf("expected version 0 after rollback, got %d", version)
	}
}
