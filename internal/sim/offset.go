package sim

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceMargin scales the shift applied to a distance series whose
// minimum is negative, keeping the minimum off zero.
const DistanceMargin = 1.1

// OffsetDistances shifts d in place so that no sample is negative and
// returns the offset it added. The shift is a display transform only.
func OffsetDistances(d []float64) float64 {
	if len(d) == 0 {
		return 0
	}
	lo := floats.Min(d)
	if lo >= 0 {
		return 0
	}
	offset := DistanceMargin * math.Abs(lo)
	floats.AddConst(offset, d)
	return offset
}
