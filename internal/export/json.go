package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/diatomic/internal/dynamo"
)

// Run is the serialized form of one simulation: the parameters that
// produced it followed by the six sample series.
type Run struct {
	Model       string  `json:"model"`
	Element     string  `json:"element"`
	Duration    float64 `json:"duration"`
	Timestep    float64 `json:"timestep"`
	Temperature float64 `json:"temperature"`
	Steps       int     `json:"steps"`

	*dynamo.Result
}

func NewRun(p dynamo.Params, r *dynamo.Result) *Run {
	return &Run{
		Model:       p.Model(),
		Element:     p.Element(),
		Duration:    p.Duration(),
		Timestep:    p.Timestep(),
		Temperature: p.Temperature(),
		Steps:       r.Len() - 1,
		Result:      r,
	}
}

func (r *Run) Params() dynamo.Params {
	return dynamo.NewParams(r.Model, r.Element, r.Duration, r.Timestep, r.Temperature)
}

func WriteJSON(w io.Writer, p dynamo.Params, r *dynamo.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewRun(p, r))
}

// ReadJSON decodes a run written by WriteJSON and checks that its series
// line up.
func ReadJSON(rd io.Reader) (*Run, error) {
	run := &Run{Result: dynamo.NewResult(0)}
	if err := json.NewDecoder(rd).Decode(run); err != nil {
		return nil, err
	}

	n := run.Len()
	for name, s := range map[string][]float64{
		"displacements":      run.Displacements,
		"distances":          run.Distances,
		"potential_energies": run.Potential,
		"kinetic_energies":   run.Kinetic,
		"total_energies":     run.Total,
	} {
		if len(s) != n {
			return nil, fmt.Errorf("export: %s has %d samples, times has %d", name, len(s), n)
		}
	}
	return run, nil
}
