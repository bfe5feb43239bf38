package tables

import (
	"errors"
	"sort"
	"testing"

	"housing-trends/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zillowRaw() *RawTable {
	return &RawTable{
		Header: []string{"RegionID", "SizeRank", "RegionName", "RegionType", "StateName", "2024-01-31", "2024-02-29", "2024-03-31"},
		Rows: [][]string{
			{"394913", "1", "New York, NY", "msa", "NY", "659000", "662000", "668000"},
			{"753899", "2", "Los Angeles, CA", "msa", "CA", "1049000", "", "1061000"},
			{"394463", "3", "Chicago, IL", "msa", "IL", "350000", "352000", "NA"},
		},
	}
}

func ptr(v float64) *float64 { return &v }

func TestTransform_HomePrice(t *testing.T) {
	table, err := Transform(zillowRaw(), HomePriceTransform())
	require.NoError(t, err)

	// Columns are the sorted identifier values
	assert.Equal(t, []string{"Chicago, IL", "Los Angeles, CA", "New York, NY"}, table.Regions())
	// Rows are the remaining columns minus dropped metadata and identifier
	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31"}, table.Periods())
	assert.Equal(t, 3, table.NumRegions())
	assert.Equal(t, 3, table.NumPeriods())

	la, err := table.Column("Los Angeles, CA")
	require.NoError(t, err)
	assert.Equal(t, []*float64{ptr(1049000), nil, ptr(1061000)}, la)

	chicago, err := table.Column("Chicago, IL")
	require.NoError(t, err)
	assert.Nil(t, chicago[2], "NA should be missing")
}

func TestTransform_RentKeepsSourceOrder(t *testing.T) {
	raw := &RawTable{
		Header: []string{"RegionID", "SizeRank", "RegionName", "2024-01", "2024-02"},
		Rows: [][]string{
			{"2", "2", "Zephyrhills, FL", "1500", "1510"},
			{"1", "1", "Albany, NY", "1700", "1720"},
		},
	}

	table, err := Transform(raw, RentTransform())
	require.NoError(t, err)
	assert.Equal(t, []string{"Zephyrhills, FL", "Albany, NY"}, table.Regions())
	assert.Equal(t, []string{"2024-01", "2024-02"}, table.Periods())
}

func TestTransform_RentKeepsMetadataRows(t *testing.T) {
	raw := zillowRaw()
	raw.Header = []string{"RegionID", "SizeRank", "RegionName", "RegionType", "StateName", "2024-03-31", "2024-01-31", "2024-02-29"}

	table, err := Transform(raw, RentTransform())
	require.NoError(t, err)

	// Every column except the two dropped and the identifier becomes a row
	assert.Equal(t, len(raw.Header)-2-1, table.NumPeriods())
	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31", "RegionType", "StateName"}, table.Periods())
	assert.Equal(t, []string{"New York, NY", "Los Angeles, CA", "Chicago, IL"}, table.Regions())

	ny, err := table.Column("New York, NY")
	require.NoError(t, err)
	assert.Equal(t, []*float64{ptr(662000), ptr(668000), ptr(659000), nil, nil}, ny)
}

func TestTransform_NumericMetadataIsKept(t *testing.T) {
	raw := &RawTable{
		Header: []string{"RegionName", "Score", "2024-01"},
		Rows:   [][]string{{"A, B", "7", "1"}, {"C, D", "n/a", "2"}},
	}

	table, err := Transform(raw, TransformOptions{IDColumn: "RegionName"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01", "Score"}, table.Periods())

	ab, err := table.Column("A, B")
	require.NoError(t, err)
	assert.Equal(t, []*float64{ptr(1), ptr(7)}, ab)

	cd, err := table.Column("C, D")
	require.NoError(t, err)
	assert.Equal(t, []*float64{ptr(2), nil}, cd)
}

func TestTransform_ColumnAndRowSets(t *testing.T) {
	raw := zillowRaw()
	opts := HomePriceTransform()
	table, err := Transform(raw, opts)
	require.NoError(t, err)

	var ids []string
	for _, row := range raw.Rows {
		ids = append(ids, row[2])
	}
	sort.Strings(ids)
	assert.Equal(t, ids, table.Regions())

	discard := map[string]bool{opts.IDColumn: true}
	for _, c := range opts.DropColumns {
		discard[c] = true
	}
	var rest []string
	for _, h := range raw.Header {
		if !discard[h] {
			rest = append(rest, h)
		}
	}
	assert.ElementsMatch(t, rest, table.Periods())
}

func TestTransform_SortsPeriodsChronologically(t *testing.T) {
	raw := &RawTable{
		Header: []string{"RegionName", "2024-03-31", "2023-12-31", "2024-01-31"},
		Rows:   [][]string{{"Austin, TX", "3", "1", "2"}},
	}

	table, err := Transform(raw, TransformOptions{IDColumn: "RegionName"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-12-31", "2024-01-31", "2024-03-31"}, table.Periods())

	values, err := table.Column("Austin, TX")
	require.NoError(t, err)
	assert.Equal(t, []*float64{ptr(1), ptr(2), ptr(3)}, values)
}

func TestTransform_SlashDatesSortByTime(t *testing.T) {
	// Lexicographic order would put 10/31 before 9/30
	raw := &RawTable{
		Header: []string{"RegionName", "10/31/2023", "9/30/2023"},
		Rows:   [][]string{{"Austin, TX", "2", "1"}},
	}

	table, err := Transform(raw, TransformOptions{IDColumn: "RegionName"})
	require.NoError(t, err)
	assert.Equal(t, []string{"9/30/2023", "10/31/2023"}, table.Periods())
}

func TestTransform_Errors(t *testing.T) {
	tests := []struct {
		name   string
		raw    *RawTable
		opts   TransformOptions
		target error
	}{
		{
			name:   "duplicate region",
			raw:    &RawTable{Header: []string{"RegionName", "2024-01"}, Rows: [][]string{{"A, B", "1"}, {"A, B", "2"}}},
			opts:   TransformOptions{IDColumn: "RegionName"},
			target: common.ErrDuplicateKey,
		},
		{
			name:   "missing identifier column",
			raw:    &RawTable{Header: []string{"Metro", "2024-01"}, Rows: [][]string{{"A, B", "1"}}},
			opts:   TransformOptions{IDColumn: "RegionName"},
			target: common.ErrMissingColumn,
		},
		{
			name:   "missing drop column",
			raw:    &RawTable{Header: []string{"RegionName", "2024-01"}, Rows: [][]string{{"A, B", "1"}}},
			opts:   TransformOptions{IDColumn: "RegionName", DropColumns: []string{"StateName"}},
			target: common.ErrMissingColumn,
		},
		{
			name:   "non numeric cell",
			raw:    &RawTable{Header: []string{"RegionName", "2024-01"}, Rows: [][]string{{"A, B", "lots"}}},
			opts:   TransformOptions{IDColumn: "RegionName"},
			target: common.ErrInvalidValue,
		},
		{
			name:   "infinite cell",
			raw:    &RawTable{Header: []string{"RegionName", "2024-01"}, Rows: [][]string{{"A, B", "Inf"}}},
			opts:   TransformOptions{IDColumn: "RegionName"},
			target: common.ErrInvalidValue,
		},
		{
			name:   "empty region name",
			raw:    &RawTable{Header: []string{"RegionName", "2024-01"}, Rows: [][]string{{" ", "1"}}},
			opts:   TransformOptions{IDColumn: "RegionName"},
			target: common.ErrMissingColumn,
		},
		{
			name:   "duplicate period",
			raw:    &RawTable{Header: []string{"RegionName", "2024-01", "2024-01"}, Rows: [][]string{{"A, B", "1", "2"}}},
			opts:   TransformOptions{IDColumn: "RegionName"},
			target: common.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Transform(tt.raw, tt.opts)
			assert.Nil(t, table)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestTransform_CannotDropIdentifier(t *testing.T) {
	raw := &RawTable{Header: []string{"RegionName", "2024-01"}, Rows: [][]string{{"A, B", "1"}}}
	_, err := Transform(raw, TransformOptions{IDColumn: "RegionName", DropColumns: []string{"RegionName"}})
	assert.Error(t, err)
}

func TestTransform_EmptyTable(t *testing.T) {
	raw := &RawTable{Header: []string{"RegionName", "2024-01"}}
	table, err := Transform(raw, TransformOptions{IDColumn: "RegionName"})
	require.NoError(t, err)
	assert.Empty(t, table.Regions())
	assert.Equal(t, []string{"2024-01"}, table.Periods())
}

func TestInvert_RoundTrip(t *testing.T) {
	table, err := Transform(zillowRaw(), HomePriceTransform())
	require.NoError(t, err)

	raw := Invert(table, "RegionName")
	assert.Equal(t, []string{"RegionName", "2024-01-31", "2024-02-29", "2024-03-31"}, raw.Header)
	assert.Equal(t, []string{"Los Angeles, CA", "1049000", "", "1061000"}, raw.Rows[1])

	again, err := Transform(raw, TransformOptions{IDColumn: "RegionName", SortByKey: true})
	require.NoError(t, err)
	assert.Equal(t, table.Regions(), again.Regions())
	assert.Equal(t, table.Periods(), again.Periods())

	for _, region := range table.Regions() {
		want, _ := table.Column(region)
		got, err := again.Column(region)
		require.NoError(t, err)
		assert.Equal(t, want, got, region)
	}
}

func TestPresetTransform(t *testing.T) {
	opts, err := PresetTransform(PresetHomePrice)
	require.NoError(t, err)
	assert.Equal(t, HomePriceTransform(), opts)

	opts, err = PresetTransform(PresetRent)
	require.NoError(t, err)
	assert.False(t, opts.SortByKey)
	assert.Equal(t, []string{"RegionID", "SizeRank"}, opts.DropColumns)

	_, err = PresetTransform("sales")
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		label   string
		wantErr bool
	}{
		{"2024-01-31", false},
		{"2024-01", false},
		{"01/31/2024", false},
		{"1/31/2024", false},
		{" 2024-01-31 ", false},
		{"StateName", true},
		{"2024", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParsePeriod(tt.label)
		if tt.wantErr {
			assert.ErrorIs(t, err, common.ErrInvalidPeriod, tt.label)
		} else {
			assert.NoError(t, err, tt.label)
		}
	}
}
