package selection

import (
	"encoding/json"
	"testing"

	"housing-trends/common"
	"housing-trends/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func xyzTable(t *testing.T) *tables.SeriesTable {
	t.Helper()
	table, err := tables.New([]string{"2024-01-31", "2024-02-29", "2024-03-31"}, []tables.Series{
		{Label: "X", Values: []*float64{ptr(100), ptr(110), ptr(120)}},
		{Label: "Y", Values: []*float64{nil, ptr(200), ptr(150)}},
		{Label: "Z", Values: []*float64{nil, nil, nil}},
	})
	require.NoError(t, err)
	return table
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Selection
	}{
		{"two labels", "New York,NY,Los Angeles,CA", Selection{"New York,NY", "Los Angeles,CA"}},
		{"one label", "Chicago,IL", Selection{"Chicago,IL"}},
		{"spaces kept", "New York, NY,Austin, TX", Selection{"New York, NY", "Austin, TX"}},
		// Trailing unpaired token is dropped silently
		{"odd token count", "A,B,C", Selection{"A,B"}},
		{"single token", "Chicago", Selection{}},
		// Labels with extra commas are mis-paired, not repaired
		{"three part label", "Louisville/Jefferson County,KY,IN,Austin,TX", Selection{"Louisville/Jefferson County,KY", "IN,Austin"}},
		{"empty tokens", ",", Selection{","}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	sel, err := Parse("")
	assert.ErrorIs(t, err, common.ErrMissingParameter)
	assert.Nil(t, sel)
}

func TestJoin_RoundTrip(t *testing.T) {
	labels := []string{"New York, NY", "Los Angeles, CA"}
	sel, err := Parse(Join(labels))
	require.NoError(t, err)
	assert.Equal(t, Selection(labels), sel)
}

func TestBuildPayload_SelectionOrder(t *testing.T) {
	table := xyzTable(t)

	payload, err := BuildPayload(table, Selection{"Z", "X"}, DefaultStyle())
	require.NoError(t, err)

	require.Len(t, payload.Datasets, 2)
	assert.Equal(t, "Z", payload.Datasets[0].Label)
	assert.Equal(t, "X", payload.Datasets[1].Label)
	assert.Equal(t, []*float64{ptr(100), ptr(110), ptr(120)}, payload.Datasets[1].Data)

	// Labels are the full period index, never sliced
	assert.Equal(t, table.Periods(), payload.Labels)
}

func TestBuildPayload_Style(t *testing.T) {
	payload, err := BuildPayload(xyzTable(t), Selection{"X"}, DefaultStyle())
	require.NoError(t, err)

	ds := payload.Datasets[0]
	assert.False(t, ds.Fill)
	assert.Equal(t, "#FF6385", ds.BorderColor)
	assert.Equal(t, "#FF638576", ds.BackgroundColor)
	assert.Equal(t, 0.3, ds.Tension)
	assert.Equal(t, 3, ds.BorderWidth)
	assert.Equal(t, 3, ds.PointRadius)
	assert.Equal(t, 8, ds.PointHoverRadius)
}

func TestBuildPayload_ColorFollowsPosition(t *testing.T) {
	table := xyzTable(t)

	first, err := BuildPayload(table, Selection{"X", "Y"}, DefaultStyle())
	require.NoError(t, err)
	second, err := BuildPayload(table, Selection{"Y", "X"}, DefaultStyle())
	require.NoError(t, err)

	assert.Equal(t, "Y", first.Datasets[1].Label)
	assert.Equal(t, "Y", second.Datasets[0].Label)
	assert.NotEqual(t, first.Datasets[1].BorderColor, second.Datasets[0].BorderColor)
	assert.Equal(t, first.Datasets[0].BorderColor, second.Datasets[0].BorderColor)
}

func TestBuildPayload_PaletteWraps(t *testing.T) {
	table := xyzTable(t)

	sel := make(Selection, len(BorderPalette)+1)
	for i := range sel {
		sel[i] = "X"
	}

	payload, err := BuildPayload(table, sel, DefaultStyle())
	require.NoError(t, err)
	require.Len(t, payload.Datasets, len(BorderPalette)+1)
	assert.Equal(t, payload.Datasets[0].BorderColor, payload.Datasets[len(BorderPalette)].BorderColor)
	assert.Equal(t, payload.Datasets[0].BackgroundColor, payload.Datasets[len(BorderPalette)].BackgroundColor)
}

func TestBuildPayload_UnknownRegion(t *testing.T) {
	payload, err := BuildPayload(xyzTable(t), Selection{"X", "Nowhere, ZZ"}, DefaultStyle())
	assert.ErrorIs(t, err, common.ErrUnknownRegion)
	assert.Nil(t, payload)
}

func TestBuildPayload_EmptySelection(t *testing.T) {
	table := xyzTable(t)

	payload, err := Chart(table, "Chicago", DefaultStyle())
	require.NoError(t, err)
	assert.Empty(t, payload.Datasets)
	assert.Equal(t, table.Periods(), payload.Labels)
}

func TestChart_MissingParameter(t *testing.T) {
	_, err := Chart(xyzTable(t), "", DefaultStyle())
	assert.ErrorIs(t, err, common.ErrMissingParameter)
}

func TestChartPayload_JSONShape(t *testing.T) {
	payload, err := BuildPayload(xyzTable(t), Selection{"Y"}, DefaultStyle())
	require.NoError(t, err)

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"labels": ["2024-01-31", "2024-02-29", "2024-03-31"],
		"datasets": [{
			"label": "Y",
			"data": [null, 200, 150],
			"fill": false,
			"borderColor": "#FF6385",
			"backgroundColor": "#FF638576",
			"tension": 0.3,
			"borderWidth": 3,
			"pointRadius": 3,
			"pointHoverRadius": 8
		}]
	}`, string(data))
}

func TestSummarize(t *testing.T) {
	summaries, err := Summarize(xyzTable(t), Selection{"Y", "X", "Z"})
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	y := summaries[0]
	assert.Equal(t, "Y", y.Label)
	assert.Equal(t, 2, y.Observations)
	assert.Equal(t, 1, y.Missing)
	assert.Equal(t, "2024-02-29", y.FirstPeriod)
	assert.Equal(t, "2024-03-31", y.LastPeriod)
	assert.Equal(t, 200.0, *y.First)
	assert.Equal(t, 150.0, *y.Last)
	assert.Equal(t, 150.0, *y.Min)
	assert.Equal(t, 200.0, *y.Max)
	assert.Equal(t, 175.0, *y.Mean)
	assert.Equal(t, -50.0, *y.Change)
	assert.Equal(t, -25.0, *y.ChangePct)

	x := summaries[1]
	assert.Equal(t, 110.0, *x.Mean)
	assert.InDelta(t, 10.0, *x.Std, 1e-9)
	assert.InDelta(t, 20.0, *x.ChangePct, 1e-9)

	z := summaries[2]
	assert.Equal(t, 0, z.Observations)
	assert.Equal(t, 3, z.Missing)
	assert.Nil(t, z.Mean)
	assert.Nil(t, z.ChangePct)
}

func TestSummarize_UnknownRegion(t *testing.T) {
	_, err := Summarize(xyzTable(t), Selection{"Q"})
	assert.ErrorIs(t, err, common.ErrUnknownRegion)
}
