package physics

import "math"

const (
	// Boltzmann constant in J/K.
	KB float32 = 1.3806488e-23
	// Bohr radius in metres.
	A0ToM float32 = 5.2917721092e-11
)

// single-precision wrappers over package math

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }
func exp32(x float32) float32  { return float32(math.Exp(float64(x))) }
func log32(x float32) float32  { return float32(math.Log(float64(x))) }

func pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

func finite32(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
