package dynamo

// Result holds the sampled time series of one run. All six series share the
// same length: the initial sample plus one per step. Values are widened to
// float64 only when appended.
type Result struct {
	Times         []float64 `json:"times"`
	Displacements []float64 `json:"displacements"`
	Distances     []float64 `json:"distances"`
	Potential     []float64 `json:"potential_energies"`
	Kinetic       []float64 `json:"kinetic_energies"`
	Total         []float64 `json:"total_energies"`

	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func NewResult(capacity int) *Result {
	return &Result{
		Times:         make([]float64, 0, capacity),
		Displacements: make([]float64, 0, capacity),
		Distances:     make([]float64, 0, capacity),
		Potential:     make([]float64, 0, capacity),
		Kinetic:       make([]float64, 0, capacity),
		Total:         make([]float64, 0, capacity),
		Metrics:       make(map[string]float64),
	}
}

// Append records s as the next sample. Distance starts out equal to
// displacement; any display offset is applied after the run.
func (r *Result) Append(s State) {
	r.Times = append(r.Times, float64(s.Time))
	r.Displacements = append(r.Displacements, float64(s.Displacement))
	r.Distances = append(r.Distances, float64(s.Displacement))
	r.Potential = append(r.Potential, float64(s.Potential))
	r.Kinetic = append(r.Kinetic, float64(s.Kinetic))
	r.Total = append(r.Total, float64(s.Total))
}

func (r *Result) Len() int { return len(r.Times) }
