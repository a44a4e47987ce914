// Package elements holds the physical constants of the supported diatomic
// molecules, keyed by element symbol.
package elements

import (
	"fmt"
	"sort"

	"github.com/san-kum/diatomic/internal/dynamo"
)

// Properties are the constants every potential model may read. Fields a
// model does not use are zero.
type Properties struct {
	Symbol string
	Name   string

	MassAU float32

	SpringConstantAU float32
	SpringConstantSI float32

	DissociationEnergyAU float32
	DissociationEnergySI float32
	MorseAlphaAU         float32
	MorseAlphaSI         float32

	// Lennard-Jones r* and epsilon.
	EquilibriumSeparationAU float32
	WellDepthAU             float32
}

var table = map[string]Properties{
	"H": {
		Symbol:               "H",
		Name:                 "hydrogen",
		MassAU:               9.114400e+02,
		SpringConstantAU:     3.665358e-01,
		SpringConstantSI:     5.706570e+02,
		DissociationEnergyAU: 1.818446e-01,
		DissociationEnergySI: 7.928147e-19,
		MorseAlphaAU:         1.003894e+00,
		MorseAlphaSI:         1.897085e+10,
	},
	"Hg": {
		Symbol:                  "Hg",
		Name:                    "mercury",
		MassAU:                  1.840841e+05,
		SpringConstantAU:        1.374407e-03,
		SpringConstantSI:        2.139865e+00,
		EquilibriumSeparationAU: 6.952302e+00,
		WellDepthAU:             1.845314e-03,
	},
	"Ar": {
		Symbol:                  "Ar",
		Name:                    "argon",
		MassAU:                  3.641021e+04,
		SpringConstantAU:        3.232914e-04,
		SpringConstantSI:        5.033442e-01,
		EquilibriumSeparationAU: 7.107260e+00,
		WellDepthAU:             4.536240e-04,
	},
}

// Lookup returns the properties for symbol and whether it is known.
func Lookup(symbol string) (Properties, bool) {
	p, ok := table[symbol]
	return p, ok
}

// Get is Lookup with absence reported as an error wrapping
// dynamo.ErrUnknownElement.
func Get(symbol string) (Properties, error) {
	p, ok := table[symbol]
	if !ok {
		return Properties{}, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownElement, symbol, Symbols())
	}
	return p, nil
}

// Name returns the full element name for symbol, or the symbol itself when
// it is not in the table.
func Name(symbol string) string {
	if p, ok := table[symbol]; ok {
		return p.Name
	}
	return symbol
}

func Symbols() []string {
	names := make([]string, 0, len(table))
	for s := range table {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether p carries the constants model needs.
func (p Properties) Supports(model string) bool {
	switch model {
	case dynamo.ModelHarmonic:
		return p.SpringConstantAU > 0 && p.SpringConstantSI > 0
	case dynamo.ModelMorse:
		return p.SpringConstantSI > 0 && p.DissociationEnergyAU > 0 && p.DissociationEnergySI > 0 &&
			p.MorseAlphaAU > 0 && p.MorseAlphaSI > 0
	case dynamo.ModelLennardJones:
		return p.SpringConstantAU > 0 && p.SpringConstantSI > 0 &&
			p.EquilibriumSeparationAU > 0 && p.WellDepthAU > 0
	}
	return false
}
