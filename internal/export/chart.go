package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/diatomic/internal/dynamo"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts a format name or a file path and picks the format
// from its extension.
func ParseFormat(s string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(s), "."))
	if ext == "" {
		ext = strings.ToLower(s)
	}
	switch Format(ext) {
	case PNG, SVG:
		return Format(ext), nil
	}
	return "", fmt.Errorf("export: unsupported chart format %q (want png or svg)", s)
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

type ChartOptions struct {
	Width  int
	Height int
	Format Format
	Title  string
}

var ErrNotEnoughSamples = errors.New("export: a chart needs at least two samples")

const padding = 0.1

var (
	potentialColor = chart.ColorRed
	kineticColor   = chart.ColorBlue
	totalColor     = chart.ColorGreen
	bondColor      = drawing.Color{R: 0, G: 116, B: 217, A: 255}
)

// RenderEnergy draws potential, kinetic and total energy against time.
func RenderEnergy(w io.Writer, r *dynamo.Result, opts ChartOptions) error {
	if r.Len() < 2 {
		return ErrNotEnoughSamples
	}
	if opts.Title == "" {
		opts.Title = "Energy Over Time"
	}

	series := []chart.Series{
		line("Potential Energy", r.Times, r.Potential, potentialColor),
		line("Kinetic Energy", r.Times, r.Kinetic, kineticColor),
		line("Total Energy", r.Times, r.Total, totalColor),
	}
	graph := newChart(opts, "Energy (Eh)", r.Times, series, r.Potential, r.Kinetic, r.Total)
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(opts.Format.provider(), w)
}

// RenderDisplacement draws the bond displacement against time.
func RenderDisplacement(w io.Writer, r *dynamo.Result, opts ChartOptions) error {
	if r.Len() < 2 {
		return ErrNotEnoughSamples
	}
	if opts.Title == "" {
		opts.Title = "Displacement Over Time"
	}

	series := []chart.Series{
		line("Displacement", r.Times, r.Displacements, bondColor),
	}
	graph := newChart(opts, "Displacement (a0)", r.Times, series, r.Displacements)

	return graph.Render(opts.Format.provider(), w)
}

func line(name string, x, y []float64, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: x,
		YValues: y,
		Style:   chart.Style{StrokeColor: color, StrokeWidth: 2.0},
	}
}

func newChart(opts ChartOptions, yName string, times []float64, series []chart.Series, ys ...[]float64) chart.Chart {
	lo, hi := PaddedRange(ys...)
	return chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Time (au)",
			Range: &chart.ContinuousRange{Min: 0, Max: floats.Max(times)},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(math.Floor(v.(float64))))
			},
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.3g", v.(float64))
			},
		},
		Series: series,
	}
}

// PaddedRange returns the span of all values and zero, widened by 10% on
// each side. A span of zero widens to [-1, 1] around the value.
func PaddedRange(ys ...[]float64) (lo, hi float64) {
	for _, y := range ys {
		if len(y) == 0 {
			continue
		}
		lo = math.Min(lo, floats.Min(y))
		hi = math.Max(hi, floats.Max(y))
	}
	span := hi - lo
	if span == 0 {
		return lo - 1, hi + 1
	}
	return lo - padding*span, hi + padding*span
}
