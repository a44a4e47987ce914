package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/diatomic/internal/dynamo"
)

// Downsample picks at most n evenly spaced values, always keeping the
// first and last.
func Downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	if n == 1 {
		return values[len(values)-1:]
	}
	out := make([]float64, n)
	stride := float64(len(values)-1) / float64(n-1)
	for i := range out {
		out[i] = values[int(float64(i)*stride+0.5)]
	}
	return out
}

// PlotSeries draws one series as a terminal line chart.
func PlotSeries(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(Downsample(values, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotEnergies draws potential, kinetic and total energy on shared axes.
func PlotEnergies(r *dynamo.Result, width, height int) string {
	if r.Len() == 0 {
		return ""
	}
	return asciigraph.PlotMany(
		[][]float64{
			Downsample(r.Potential, width),
			Downsample(r.Kinetic, width),
			Downsample(r.Total, width),
		},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(6),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue, asciigraph.Green),
		asciigraph.SeriesLegends("potential", "kinetic", "total"),
		asciigraph.Caption("energy (Eh)"),
	)
}
