package physics

import (
	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/elements"
)

// Harmonic is the linear spring F = -k r.
type Harmonic struct {
	K float32 // force constant, atomic units
}

func NewHarmonic(p elements.Properties) *Harmonic {
	return &Harmonic{K: p.SpringConstantAU}
}

func (h *Harmonic) Name() string { return dynamo.ModelHarmonic }

func (h *Harmonic) Force(r float32) float32 { return -h.K * r }

func (h *Harmonic) Energy(r float32) float32 { return 0.5 * h.K * r * r }

// InitialEnergy is the energy of the bond at rest at r. It squares r before
// scaling, which rounds differently from Energy.
func (h *Harmonic) InitialEnergy(r float32) float32 { return 0.5 * h.K * (r * r) }

// InitialDisplacement converts the thermal seed from metres to bohr.
func (h *Harmonic) InitialDisplacement(seed float32) (float32, error) {
	return seed / A0ToM, nil
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"k": float64(h.K)}
}
