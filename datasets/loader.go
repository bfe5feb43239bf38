package datasets

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"housing-trends/common"
	"housing-trends/parsers"
	"housing-trends/tables"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReadRaw reads a whole tabular source into a RawTable.
// Any row-level parse error fails the read.
func ReadRaw(format parsers.Format, reader io.Reader, sheet string) (*tables.RawTable, error) {
	header, records, errs, err := parsers.Parse(format, reader, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := parsers.Drain(records, errs)
	if err != nil {
		return nil, err
	}

	raw := &tables.RawTable{
		Header: header,
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		raw.Rows = append(raw.Rows, r.Values)
	}
	return raw, nil
}

// ReadFile opens path and reads it with ReadRaw
func ReadFile(path string, format parsers.Format, sheet string) (*tables.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadRaw(format, file, sheet)
}

// LoadDefinition reads and pivots one dataset
func LoadDefinition(def Definition) (*tables.SeriesTable, error) {
	opts, err := def.Options()
	if err != nil {
		return nil, err
	}

	raw, err := ReadFile(def.Path, parsers.Format(def.Format), def.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", def.Path, err)
	}

	table, err := tables.Transform(raw, opts)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", def.Path, err)
	}
	return table, nil
}

// Load normalizes and validates the catalogue, then loads every dataset once.
// The first failure aborts: no registry is returned for a partially loaded catalogue.
// Each attempt is recorded in dataset_loads when db is non-nil.
func Load(cat Catalogue, db *gorm.DB) (*Registry, error) {
	cat.Datasets = append([]Definition(nil), cat.Datasets...)
	cat.Normalize()
	if err := cat.Validate(); err != nil {
		recordRejected(db, cat, err)
		return nil, fmt.Errorf("invalid dataset catalogue: %w", err)
	}

	loaded := make([]*Dataset, 0, len(cat.Datasets))
	for _, def := range cat.Datasets {
		start := time.Now()
		table, err := LoadDefinition(def)
		duration := time.Since(start)

		recordLoad(db, def, table, start, duration, err)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", def.Name, err)
		}

		log.Printf("Loaded dataset %s: %d regions, %d periods in %dms",
			def.Name, table.NumRegions(), table.NumPeriods(), duration.Milliseconds())

		loaded = append(loaded, &Dataset{
			Definition: def,
			Table:      table,
			LoadedAt:   start,
		})
	}

	return NewRegistry(cat.Primary, loaded)
}

func recordLoad(db *gorm.DB, def Definition, table *tables.SeriesTable, start time.Time, duration time.Duration, loadErr error) {
	if db == nil {
		return
	}

	entry := common.DatasetLoad{
		ID:         uuid.New().String(),
		Dataset:    def.Name,
		SourcePath: def.Path,
		Format:     def.Format,
		Status:     common.LoadStatusLoaded,
		DurationMs: int(duration.Milliseconds()),
		LoadedAt:   start,
	}
	if loadErr != nil {
		entry.Status = common.LoadStatusFailed
		entry.Error = loadErr.Error()
	} else {
		entry.Regions = table.NumRegions()
		entry.Periods = table.NumPeriods()
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Failed to record load of %s: %v", def.Name, err)
	}
}

// recordRejected stores a failed load with the validation errors as JSON for
// every definition the catalogue validation rejected
func recordRejected(db *gorm.DB, cat Catalogue, err error) {
	if db == nil {
		return
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return
	}
	for _, e := range joined.Unwrap() {
		var result *common.ValidationResult
		if !errors.As(e, &result) || result.Index >= len(cat.Datasets) {
			continue
		}
		def := cat.Datasets[result.Index]
		entry := common.DatasetLoad{
			ID:         uuid.New().String(),
			Dataset:    def.Name,
			SourcePath: def.Path,
			Format:     def.Format,
			Status:     common.LoadStatusFailed,
			Error:      result.ToJSON(),
			LoadedAt:   time.Now(),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("Failed to record rejected dataset #%d: %v", result.Index, err)
		}
	}
}
