package tables

import (
	"testing"

	"housing-trends/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xyzTable(t *testing.T) *SeriesTable {
	t.Helper()
	table, err := New([]string{"2024-01", "2024-02"}, []Series{
		{Label: "X", Values: []*float64{ptr(1), ptr(2)}},
		{Label: "Y", Values: []*float64{ptr(3), nil}},
		{Label: "Z", Values: []*float64{ptr(5), ptr(6)}},
	})
	require.NoError(t, err)
	return table
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]string{"2024-01"}, []Series{
		{Label: "X", Values: []*float64{ptr(1)}},
		{Label: "X", Values: []*float64{ptr(2)}},
	})
	assert.ErrorIs(t, err, common.ErrDuplicateKey)

	_, err = New([]string{"2024-01", "2024-02"}, []Series{
		{Label: "X", Values: []*float64{ptr(1)}},
	})
	assert.Error(t, err)
}

func TestSeriesTable_Select(t *testing.T) {
	table := xyzTable(t)

	series, err := table.Select([]string{"Z", "X"})
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "Z", series[0].Label)
	assert.Equal(t, "X", series[1].Label)
	assert.Equal(t, []*float64{ptr(5), ptr(6)}, series[0].Values)
}

func TestSeriesTable_SelectUnknownRegion(t *testing.T) {
	table := xyzTable(t)

	series, err := table.Select([]string{"X", "x"})
	assert.ErrorIs(t, err, common.ErrUnknownRegion)
	assert.Nil(t, series, "no partial result")
}

func TestSeriesTable_ExactMatchOnly(t *testing.T) {
	table := xyzTable(t)

	assert.True(t, table.Has("Y"))
	assert.False(t, table.Has("y"))
	assert.False(t, table.Has(" Y"))

	_, err := table.Column("Q")
	assert.ErrorIs(t, err, common.ErrUnknownRegion)
}

func TestSeriesTable_ReturnsCopies(t *testing.T) {
	table := xyzTable(t)

	regions := table.Regions()
	regions[0] = "mutated"
	assert.Equal(t, []string{"X", "Y", "Z"}, table.Regions())

	periods := table.Periods()
	periods[0] = "mutated"
	assert.Equal(t, "2024-01", table.Periods()[0])

	values, err := table.Column("X")
	require.NoError(t, err)
	*values[0] = 99
	again, _ := table.Column("X")
	assert.Equal(t, 1.0, *again[0])
}

func TestSeriesTable_MissingValues(t *testing.T) {
	table := xyzTable(t)

	values, err := table.Column("Y")
	require.NoError(t, err)
	assert.Equal(t, 3.0, *values[0])
	assert.Nil(t, values[1])
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", FormatCell(nil))
	assert.Equal(t, "659000", FormatCell(ptr(659000)))
	assert.Equal(t, "1875.5", FormatCell(ptr(1875.5)))
}
