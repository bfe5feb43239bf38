package selection

import (
	"math"

	"housing-trends/tables"
)

// RegionSummary describes one region's observed values over the full period range.
// Value fields are nil when the region has no observations.
type RegionSummary struct {
	Label        string   `json:"label"`
	Observations int      `json:"observations"`
	Missing      int      `json:"missing"`
	FirstPeriod  string   `json:"first_period,omitempty"`
	LastPeriod   string   `json:"last_period,omitempty"`
	First        *float64 `json:"first"`
	Last         *float64 `json:"last"`
	Min          *float64 `json:"min"`
	Max          *float64 `json:"max"`
	Mean         *float64 `json:"mean"`
	Std          *float64 `json:"std"`
	Change       *float64 `json:"change"`
	ChangePct    *float64 `json:"change_pct"`
}

// Summarize computes a RegionSummary per selected region, in selection order
func Summarize(table *tables.SeriesTable, sel Selection) ([]RegionSummary, error) {
	series, err := table.Select(sel)
	if err != nil {
		return nil, err
	}

	periods := table.Periods()
	out := make([]RegionSummary, 0, len(series))
	for _, s := range series {
		out = append(out, summarize(s, periods))
	}
	return out, nil
}

func summarize(s tables.Series, periods []string) RegionSummary {
	summary := RegionSummary{Label: s.Label}

	var observed []float64
	for i, v := range s.Values {
		if v == nil {
			summary.Missing++
			continue
		}
		if len(observed) == 0 {
			summary.FirstPeriod = periods[i]
		}
		summary.LastPeriod = periods[i]
		observed = append(observed, *v)
	}

	summary.Observations = len(observed)
	if len(observed) == 0 {
		return summary
	}

	first := observed[0]
	last := observed[len(observed)-1]
	minV, maxV, sum := first, first, 0.0
	for _, v := range observed {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
		sum += v
	}
	mean := sum / float64(len(observed))

	// Sample standard deviation, zero below two observations
	std := 0.0
	if len(observed) > 1 {
		sumSq := 0.0
		for _, v := range observed {
			d := v - mean
			sumSq += d * d
		}
		std = math.Sqrt(sumSq / float64(len(observed)-1))
	}

	change := last - first
	summary.First = &first
	summary.Last = &last
	summary.Min = &minV
	summary.Max = &maxV
	summary.Mean = &mean
	summary.Std = &std
	summary.Change = &change
	if first != 0 {
		pct := change / first * 100
		summary.ChangePct = &pct
	}
	return summary
}
