package tables

import (
	"fmt"
	"math"

	"housing-trends/common"
)

// Series is one region's values over the table's periods.
// A nil entry marks a period with no observation.
type Series struct {
	Label  string
	Values []*float64
}

// SeriesTable is the pivoted, period-indexed table every query reads from.
// It is never mutated after construction, so it is safe for concurrent use.
type SeriesTable struct {
	periods []string
	regions []string
	index   map[string]int
	values  [][]float64 // values[region][period], NaN when missing
}

// New builds a SeriesTable from periods and one Series per region, keeping the given orders
func New(periods []string, columns []Series) (*SeriesTable, error) {
	t := &SeriesTable{
		periods: append([]string(nil), periods...),
		regions: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
		values:  make([][]float64, 0, len(columns)),
	}

	for _, col := range columns {
		if _, exists := t.index[col.Label]; exists {
			return nil, fmt.Errorf("%w: %q", common.ErrDuplicateKey, col.Label)
		}
		if len(col.Values) != len(periods) {
			return nil, fmt.Errorf("region %q has %d values for %d periods", col.Label, len(col.Values), len(periods))
		}

		row := make([]float64, len(col.Values))
		for i, v := range col.Values {
			if v == nil {
				row[i] = math.NaN()
			} else {
				row[i] = *v
			}
		}

		t.index[col.Label] = len(t.regions)
		t.regions = append(t.regions, col.Label)
		t.values = append(t.values, row)
	}

	return t, nil
}

// Periods returns the row index in table order
func (t *SeriesTable) Periods() []string {
	return append([]string(nil), t.periods...)
}

// Regions returns the column labels in table order
func (t *SeriesTable) Regions() []string {
	return append([]string(nil), t.regions...)
}

func (t *SeriesTable) NumPeriods() int { return len(t.periods) }
func (t *SeriesTable) NumRegions() int { return len(t.regions) }

// Has reports whether label is a column of the table. Matching is exact.
func (t *SeriesTable) Has(label string) bool {
	_, ok := t.index[label]
	return ok
}

// Column returns a copy of the values for label or ErrUnknownRegion
func (t *SeriesTable) Column(label string) ([]*float64, error) {
	i, ok := t.index[label]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownRegion, label)
	}

	row := t.values[i]
	out := make([]*float64, len(row))
	for p, v := range row {
		if math.IsNaN(v) {
			continue
		}
		val := v
		out[p] = &val
	}
	return out, nil
}

// Select projects the table onto labels, in the given order.
// Every label must exist; no partial result is returned otherwise.
func (t *SeriesTable) Select(labels []string) ([]Series, error) {
	for _, label := range labels {
		if !t.Has(label) {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownRegion, label)
		}
	}

	out := make([]Series, 0, len(labels))
	for _, label := range labels {
		values, err := t.Column(label)
		if err != nil {
			return nil, err
		}
		out = append(out, Series{Label: label, Values: values})
	}
	return out, nil
}
