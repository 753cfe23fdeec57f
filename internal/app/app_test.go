package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/emiliopalmerini/launchdash/internal/adapters/csvfile"
	"github.com/emiliopalmerini/launchdash/internal/adapters/otel"
	"github.com/emiliopalmerini/launchdash/internal/domain"
)

func TestOpenSource_File(t *testing.T) {
	cfg := &Config{DataSource: "launches.csv"}

	src, closeFn, err := OpenSource(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	fileSrc, ok := src.(*csvfile.Source)
	if !ok {
		t.Fatalf("expected *csvfile.Source, got %T", src)
	}
	if fileSrc.Path != "launches.csv" {
		t.Errorf("unexpected path %q", fileSrc.Path)
	}
}

func TestLoadDataset_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launches.csv")
	content := "Launch Site,Payload Mass (kg),Booster Version Category,class\nKSC LC-39A,2490,FT,1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ds, err := LoadDataset(context.Background(), &Config{DataSource: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 1 {
		t.Errorf("expected 1 record, got %d", ds.Len())
	}
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(context.Background(), &Config{DataSource: filepath.Join(t.TempDir(), "absent.csv")})

	var loadErr *domain.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestNewMetricsExporter_DisabledIsNoOp(t *testing.T) {
	exp := NewMetricsExporter(context.Background(), &Config{})
	if _, ok := exp.(*otel.NoOpExporter); !ok {
		t.Errorf("expected *otel.NoOpExporter, got %T", exp)
	}
}
