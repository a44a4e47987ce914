package analysis

import (
	"gonum.org/v1/gonum/stat"
)

// CrossingPeriod estimates the oscillation period from the times at which
// values rises through its mean, interpolating linearly between samples.
func CrossingPeriod(times, values []float64) (float64, error) {
	if len(times) != len(values) || len(values) < 3 {
		return 0, ErrTooShort
	}

	mean := stat.Mean(values, nil)
	crossings := make([]float64, 0, 16)
	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1]-mean, values[i]-mean
		if prev < 0 && cur >= 0 {
			frac := -prev / (cur - prev)
			crossings = append(crossings, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}

	if len(crossings) < 2 {
		return 0, ErrFlat
	}
	return (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1), nil
}
