package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrTooShort = errors.New("analysis: series too short")
	ErrFlat     = errors.New("analysis: series has no oscillation")
)

// Spectrum returns the one-sided power spectrum of series sampled every dt.
// The mean is removed and a Hann window applied before the transform, so
// freqs[0] is the DC bin and carries almost no power.
func Spectrum(series []float64, dt float64) (freqs, power []float64) {
	n := len(series)
	if n < 2 || dt <= 0 {
		return nil, nil
	}

	x := make([]float64, n)
	copy(x, series)
	floats.AddConst(-stat.Mean(x, nil), x)
	window.Apply(x, window.Hann)

	spectrum := fft.FFTReal(x)

	half := n/2 + 1
	freqs = make([]float64, half)
	power = make([]float64, half)
	df := 1 / (float64(n) * dt)
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) * df
		mag := cmplx.Abs(spectrum[i])
		power[i] = mag * mag
	}
	return freqs, power
}

// DominantFrequency returns the frequency of the strongest non-DC peak in
// series, in cycles per time unit. The peak is refined with a parabola
// through the neighbouring bins of log power.
func DominantFrequency(series []float64, dt float64) (float64, error) {
	if len(series) < 4 {
		return 0, ErrTooShort
	}
	freqs, power := Spectrum(series, dt)
	if freqs == nil {
		return 0, ErrTooShort
	}

	peak := 1 + floats.MaxIdx(power[1:])
	if power[peak] == 0 || math.IsNaN(power[peak]) {
		return 0, ErrFlat
	}

	df := freqs[1]
	if peak == len(power)-1 {
		return freqs[peak], nil
	}

	a, b, c := logPower(power[peak-1]), logPower(power[peak]), logPower(power[peak+1])
	denom := a - 2*b + c
	if denom == 0 {
		return freqs[peak], nil
	}
	shift := 0.5 * (a - c) / denom
	return freqs[peak] + shift*df, nil
}

func logPower(p float64) float64 {
	if p <= 0 {
		return math.Log(math.SmallestNonzeroFloat64)
	}
	return math.Log(p)
}
