package tables

import (
	"fmt"

	"housing-trends/common"
)

// RawTable is a region-by-period table as loaded from a source file.
// Rows hold one value per header column.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of name in the header
func (t *RawTable) ColumnIndex(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", common.ErrMissingColumn, name)
}

// TransformOptions configures how a RawTable is pivoted into a SeriesTable
type TransformOptions struct {
	IDColumn    string   `yaml:"id_column" json:"id_column"`
	DropColumns []string `yaml:"drop_columns" json:"drop_columns"`
	SortByKey   bool     `yaml:"sort_by_key" json:"sort_by_key"`
}

// DefaultIDColumn names the region label column in Zillow metro exports
const DefaultIDColumn = "RegionName"

// HomePriceTransform drops the Zillow metro metadata columns and orders regions by name.
// Used for list price, home value and inventory exports.
func HomePriceTransform() TransformOptions {
	return TransformOptions{
		IDColumn:    DefaultIDColumn,
		DropColumns: []string{"RegionID", "SizeRank", "RegionType", "StateName"},
		SortByKey:   true,
	}
}

// RentTransform keeps the source region order and drops fewer columns
func RentTransform() TransformOptions {
	return TransformOptions{
		IDColumn:    DefaultIDColumn,
		DropColumns: []string{"RegionID", "SizeRank"},
		SortByKey:   false,
	}
}

// Preset names accepted in dataset configuration
const (
	PresetHomePrice = "home_price"
	PresetRent      = "rent"
)

// Presets lists the accepted preset names
func Presets() []string {
	return []string{PresetHomePrice, PresetRent}
}

// PresetTransform returns the options registered under name
func PresetTransform(name string) (TransformOptions, error) {
	switch name {
	case PresetHomePrice:
		return HomePriceTransform(), nil
	case PresetRent:
		return RentTransform(), nil
	default:
		return TransformOptions{}, fmt.Errorf("unknown transform preset %q", name)
	}
}
