package tables

import (
	"fmt"
	"strings"
	"time"

	"housing-trends/common"
)

// PeriodLayouts are the accepted period header formats, tried in order.
// Zillow exports use month-end ISO dates ("2024-01-31").
var PeriodLayouts = []string{
	"2006-01-02",
	"2006-01",
	"01/02/2006",
	"1/2/2006",
}

// ParsePeriod parses a period header label
func ParsePeriod(label string) (time.Time, error) {
	s := strings.TrimSpace(label)
	for _, layout := range PeriodLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidPeriod, label)
}
