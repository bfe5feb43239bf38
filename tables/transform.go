package tables

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"housing-trends/common"
)

// missingMarkers are cell values read as "no observation"
var missingMarkers = map[string]bool{
	"":     true,
	"NA":   true,
	"NaN":  true,
	"nan":  true,
	"null": true,
}

type periodColumn struct {
	source int // column position in the raw header
	label  string
	at     time.Time
	dated  bool
}

// Transform pivots a region-by-period RawTable into a period-by-region SeriesTable:
// the configured metadata columns are dropped, the identifier column becomes the
// region key (optionally sorted ascending), and the remaining columns become rows.
// Date columns come first in chronological order. Kept columns that are not
// dates follow in header order, with non-numeric cells read as missing.
func Transform(raw *RawTable, opts TransformOptions) (*SeriesTable, error) {
	idIdx, err := raw.ColumnIndex(opts.IDColumn)
	if err != nil {
		return nil, fmt.Errorf("identifier column: %w", err)
	}

	dropped := map[int]bool{idIdx: true}
	for _, name := range opts.DropColumns {
		if name == opts.IDColumn {
			return nil, fmt.Errorf("cannot drop identifier column %q", name)
		}
		i, err := raw.ColumnIndex(name)
		if err != nil {
			return nil, fmt.Errorf("drop column: %w", err)
		}
		dropped[i] = true
	}

	periods, err := periodColumns(raw.Header, dropped)
	if err != nil {
		return nil, err
	}

	order, err := regionOrder(raw, idIdx, opts.SortByKey)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = p.label
	}

	columns := make([]Series, 0, len(order))
	for _, r := range order {
		row := raw.Rows[r]
		values := make([]*float64, len(periods))
		for i, p := range periods {
			v, err := parseValue(row[p.source])
			if err != nil {
				if !p.dated {
					// Leftover metadata, e.g. StateName under the rent preset
					continue
				}
				return nil, fmt.Errorf("row %d, column %q: %w", r+1, p.label, err)
			}
			values[i] = v
		}
		columns = append(columns, Series{Label: row[idIdx], Values: values})
	}

	return New(labels, columns)
}

// periodColumns collects the kept header columns: date labels sorted
// chronologically (ties keep header order), then any other kept columns in
// header order.
func periodColumns(header []string, dropped map[int]bool) ([]periodColumn, error) {
	var dated, other []periodColumn
	seen := make(map[string]bool)

	for i, label := range header {
		if dropped[i] {
			continue
		}
		if seen[label] {
			return nil, fmt.Errorf("%w: period %q", common.ErrDuplicateKey, label)
		}
		seen[label] = true

		at, err := ParsePeriod(label)
		if err != nil {
			other = append(other, periodColumn{source: i, label: label})
			continue
		}
		dated = append(dated, periodColumn{source: i, label: label, at: at, dated: true})
	}

	slices.SortStableFunc(dated, func(a, b periodColumn) int {
		return a.at.Compare(b.at)
	})
	return append(dated, other...), nil
}

// regionOrder returns row positions in output column order and rejects empty
// or repeated region labels
func regionOrder(raw *RawTable, idIdx int, sortByKey bool) ([]int, error) {
	order := make([]int, 0, len(raw.Rows))
	seen := make(map[string]int, len(raw.Rows))

	for r, row := range raw.Rows {
		if len(row) != len(raw.Header) {
			return nil, fmt.Errorf("row %d has %d values, header has %d", r+1, len(row), len(raw.Header))
		}
		label := row[idIdx]
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("row %d: %w: empty region name", r+1, common.ErrMissingColumn)
		}
		if first, exists := seen[label]; exists {
			return nil, fmt.Errorf("%w: %q in rows %d and %d", common.ErrDuplicateKey, label, first+1, r+1)
		}
		seen[label] = r
		order = append(order, r)
	}

	if sortByKey {
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(raw.Rows[a][idIdx], raw.Rows[b][idIdx])
		})
	}
	return order, nil
}

func parseValue(cell string) (*float64, error) {
	s := strings.TrimSpace(cell)
	if missingMarkers[s] {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidValue, cell)
	}
	return &v, nil
}

// Invert rebuilds the region-by-period table, one row per region in table order.
// Transform(Invert(t), TransformOptions{IDColumn: idColumn}) reproduces t.
func Invert(t *SeriesTable, idColumn string) *RawTable {
	raw := &RawTable{
		Header: append([]string{idColumn}, t.periods...),
		Rows:   make([][]string, 0, len(t.regions)),
	}

	for i, label := range t.regions {
		row := make([]string, 0, len(t.periods)+1)
		row = append(row, label)
		for _, v := range t.values[i] {
			row = append(row, FormatValue(v))
		}
		raw.Rows = append(raw.Rows, row)
	}
	return raw
}

// FormatValue renders a cell for CSV output, empty when missing
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCell renders an optional value, empty when missing
func FormatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatValue(*v)
}
