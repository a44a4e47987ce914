package physics

import (
	"fmt"

	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/elements"
)

// LennardJones is the 12-6 potential written in terms of the displacement r
// from the equilibrium separation r*, so that U(0) = 0 and U(∞) = ε.
type LennardJones struct {
	RStar, Epsilon float32

	// harmonic force constant, used to map the thermal seed
	K float32
}

func NewLennardJones(p elements.Properties) *LennardJones {
	return &LennardJones{
		RStar:   p.EquilibriumSeparationAU,
		Epsilon: p.WellDepthAU,
		K:       p.SpringConstantAU,
	}
}

func (l *LennardJones) Name() string { return dynamo.ModelLennardJones }

// powers returns s⁶ and s¹² for s = r*/(r + r*), multiplied out by
// binary exponentiation: s⁶ = s²·s⁴ and s¹² = s⁴·s⁸.
func (l *LennardJones) powers(r float32) (s6, s12 float32) {
	s := l.RStar / (r + l.RStar)
	s2 := s * s
	s4 := s2 * s2
	s8 := s4 * s4
	return s2 * s4, s4 * s8
}

func (l *LennardJones) Force(r float32) float32 {
	s6, s12 := l.powers(r)
	return (12.0 / (r + l.RStar)) * l.Epsilon * (s12 - s6)
}

func (l *LennardJones) Energy(r float32) float32 {
	s6, s12 := l.powers(r)
	return l.Epsilon * (s12 - float32(2.0*s6) + 1.0)
}

func (l *LennardJones) InitialDisplacement(seed float32) (float32, error) {
	rh := seed / A0ToM
	base := sqrt32(l.K)*rh + sqrt32(2.0*l.Epsilon)
	if !(base > 0) {
		return 0, fmt.Errorf("power base %g is not positive", base)
	}
	r0 := l.RStar * (pow32(2.0*l.Epsilon, 1.0/12.0)*pow32(base, -1.0/6.0) - 1.0)
	return r0, nil
}

func (l *LennardJones) GetParams() map[string]float64 {
	return map[string]float64{"r*": float64(l.RStar), "epsilon": float64(l.Epsilon)}
}
