package physics

import (
	"fmt"

	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/elements"
)

// Morse is the anharmonic bond U = D (1 - e^{-αr})².
type Morse struct {
	D, Alpha float32 // atomic units

	// SI constants used only to invert the thermal seed.
	DSI, AlphaSI, KSI float32
}

func NewMorse(p elements.Properties) *Morse {
	return &Morse{
		D:       p.DissociationEnergyAU,
		Alpha:   p.MorseAlphaAU,
		DSI:     p.DissociationEnergySI,
		AlphaSI: p.MorseAlphaSI,
		KSI:     p.SpringConstantSI,
	}
}

func (m *Morse) Name() string { return dynamo.ModelMorse }

func (m *Morse) Force(r float32) float32 {
	e := exp32(-m.Alpha * r)
	return -2.0 * m.D * m.Alpha * e * (1.0 - e)
}

func (m *Morse) Energy(r float32) float32 {
	d := 1.0 - exp32(-m.Alpha*r)
	return m.D * (d * d)
}

// InitialDisplacement finds the Morse extension holding the same energy as
// the harmonic seed, ln(1 - sqrt(k x² / 2D)) / -α, then converts to bohr.
// The inversion only exists while k_B·T is below the well depth.
func (m *Morse) InitialDisplacement(seed float32) (float32, error) {
	arg := m.KSI * seed * seed / (2.0 * m.DSI)
	if !(arg >= 0) || !finite32(arg) {
		return 0, fmt.Errorf("square root argument %g is not a non-negative number", arg)
	}
	l := 1.0 - sqrt32(arg)
	if !(l > 0) {
		return 0, fmt.Errorf("log argument %g is not positive: thermal energy exceeds the well depth", l)
	}
	rSI := log32(l) / (-m.AlphaSI)
	return rSI / A0ToM, nil
}

func (m *Morse) GetParams() map[string]float64 {
	return map[string]float64{"D": float64(m.D), "alpha": float64(m.Alpha)}
}
