package csvfile

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/launchdash/internal/domain"
)

// Source column names.
const (
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterVersion  = "Booster Version"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnClass           = "class"
)

var requiredColumns = []string{ColumnLaunchSite, ColumnPayloadMass, ColumnBoosterCategory, ColumnClass}

// Source reads the launch dataset from a CSV file on disk.
type Source struct {
	Path string
}

// NewSource creates a CSV dataset source for path.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Load reads and parses the file.
func (s *Source) Load(ctx context.Context) (*domain.Dataset, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &domain.LoadError{Source: s.Path, Err: err}
	}
	defer func() { _ = f.Close() }()

	return Read(f, s.Path)
}

// Read parses launch data from r, transparently decompressing sources whose
// name ends in ".gz".
func Read(r io.Reader, source string) (*domain.Dataset, error) {
	if !strings.HasSuffix(source, ".gz") {
		return Decode(r, source)
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, &domain.LoadError{Source: source, Err: fmt.Errorf("open gzip stream: %w", err)}
	}
	defer func() { _ = gz.Close() }()

	return Decode(gz, source)
}

// Decode parses CSV launch data from r. source names the input in errors.
// Columns are matched by header name; unknown columns are ignored.
func Decode(r io.Reader, source string) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.LoadError{Source: source, Err: errors.New("file is empty")}
	}
	if err != nil {
		return nil, &domain.LoadError{Source: source, Err: fmt.Errorf("read header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &domain.LoadError{Source: source, Err: fmt.Errorf("missing required column %q", col)}
		}
	}
	versionIdx, hasVersion := index[ColumnBoosterVersion]

	var records []domain.LaunchRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.LoadError{Source: source, Err: err}
		}
		line, _ := reader.FieldPos(0)

		payload, err := parsePayload(row[index[ColumnPayloadMass]])
		if err != nil {
			return nil, &domain.LoadError{Source: source, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		class, err := parseClass(row[index[ColumnClass]])
		if err != nil {
			return nil, &domain.LoadError{Source: source, Err: fmt.Errorf("line %d: %w", line, err)}
		}

		rec := domain.LaunchRecord{
			LaunchSite:      strings.TrimSpace(row[index[ColumnLaunchSite]]),
			PayloadMassKg:   payload,
			BoosterCategory: strings.TrimSpace(row[index[ColumnBoosterCategory]]),
			Class:           class,
		}
		if hasVersion {
			rec.BoosterVersion = strings.TrimSpace(row[versionIdx])
		}
		records = append(records, rec)
	}

	return domain.NewDataset(records), nil
}

func parsePayload(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", ColumnPayloadMass, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%s: %q must be a non-negative number", ColumnPayloadMass, s)
	}
	return v, nil
}

func parseClass(s string) (domain.Outcome, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	switch {
	case err != nil:
		return 0, fmt.Errorf("%s: %q is not a number", ColumnClass, s)
	case v == 0:
		return domain.OutcomeFailure, nil
	case v == 1:
		return domain.OutcomeSuccess, nil
	default:
		return 0, fmt.Errorf("%s: %q must be 0 or 1", ColumnClass, s)
	}
}
