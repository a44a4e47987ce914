package metrics

import (
	"math"

	"github.com/san-kum/diatomic/internal/dynamo"
)

// Amplitude is the largest absolute bond displacement seen during a run.
type Amplitude struct {
	name string
	max  float64
}

func NewAmplitude() *Amplitude {
	return &Amplitude{name: "amplitude"}
}

func (a *Amplitude) Name() string { return a.name }

func (a *Amplitude) Observe(s dynamo.State) {
	a.max = math.Max(a.max, math.Abs(float64(s.Displacement)))
}

func (a *Amplitude) Value() float64 { return a.max }

func (a *Amplitude) Reset() { a.max = 0 }

// Defaults returns a fresh set of the metrics reported for every run.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergyDrift(),
		NewAmplitude(),
		NewMeanKinetic(),
	}
}
