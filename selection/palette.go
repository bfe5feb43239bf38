package selection

// BorderPalette is cycled through by dataset position for line colors
var BorderPalette = []string{
	"#FF6385", "#36A2EB", "#FFCE56", "#4BC0C0",
	"#9966FF", "#FF9F40", "#C9CBCF", "#7CFFB2",
}

// BackgroundPalette holds translucent versions of BorderPalette
var BackgroundPalette = []string{
	"#FF638576", "#36A3EB7A", "#FFCF567D", "#4BC0C07F",
	"#9966FF7E", "#FFA04078", "#C9CBCF7D", "#7CFFB379",
}

// Style holds the line attributes shared by every dataset of a chart
type Style struct {
	Tension          float64
	BorderWidth      int
	PointRadius      int
	PointHoverRadius int
}

// DefaultStyle matches the dashboard's line charts
func DefaultStyle() Style {
	return Style{
		Tension:          0.3,
		BorderWidth:      3,
		PointRadius:      3,
		PointHoverRadius: 8,
	}
}

// BorderColor returns the color for the dataset at position i of a request.
// Color depends on position only, never on the region.
func BorderColor(i int) string {
	return BorderPalette[i%len(BorderPalette)]
}

// BackgroundColor returns the translucent color for position i
func BackgroundColor(i int) string {
	return BackgroundPalette[i%len(BackgroundPalette)]
}
