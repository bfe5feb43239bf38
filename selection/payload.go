package selection

import (
	"housing-trends/tables"
)

// Dataset is one line of a chart
type Dataset struct {
	Label            string     `json:"label"`
	Data             []*float64 `json:"data"`
	Fill             bool       `json:"fill"`
	BorderColor      string     `json:"borderColor"`
	BackgroundColor  string     `json:"backgroundColor"`
	Tension          float64    `json:"tension"`
	BorderWidth      int        `json:"borderWidth"`
	PointRadius      int        `json:"pointRadius"`
	PointHoverRadius int        `json:"pointHoverRadius"`
}

// ChartPayload is the line chart data returned for a selection
type ChartPayload struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// BuildPayload projects table onto sel and packages one dataset per label,
// in selection order. Labels always carry the full period range.
func BuildPayload(table *tables.SeriesTable, sel Selection, style Style) (*ChartPayload, error) {
	series, err := table.Select(sel)
	if err != nil {
		return nil, err
	}

	payload := &ChartPayload{
		Labels:   table.Periods(),
		Datasets: make([]Dataset, 0, len(series)),
	}

	for i, s := range series {
		payload.Datasets = append(payload.Datasets, Dataset{
			Label:            s.Label,
			Data:             s.Values,
			Fill:             false,
			BorderColor:      BorderColor(i),
			BackgroundColor:  BackgroundColor(i),
			Tension:          style.Tension,
			BorderWidth:      style.BorderWidth,
			PointRadius:      style.PointRadius,
			PointHoverRadius: style.PointHoverRadius,
		})
	}

	return payload, nil
}

// Chart parses the raw query value and builds the payload in one step
func Chart(table *tables.SeriesTable, raw string, style Style) (*ChartPayload, error) {
	sel, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return BuildPayload(table, sel, style)
}
