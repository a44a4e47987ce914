package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/san-kum/diatomic/internal/dynamo"
	"github.com/san-kum/diatomic/internal/elements"
	"github.com/san-kum/diatomic/internal/integrators"
	"github.com/san-kum/diatomic/internal/metrics"
	"github.com/san-kum/diatomic/internal/physics"
	"github.com/sirupsen/logrus"
)

// DefaultMaxSamples bounds the length of a result. Each sample costs six
// float64 values, so the default caps a run at roughly 240 MB.
const DefaultMaxSamples = 5_000_000

// Simulator runs one parameter set at a time. It is not safe for concurrent
// use since metrics accumulate across a run; use Sweep for parallel runs.
type Simulator struct {
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
	maxSamples int
	log        logrus.FieldLogger
}

type Option func(*Simulator)

// WithMaxSamples overrides DefaultMaxSamples. Non-positive values are ignored.
func WithMaxSamples(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.maxSamples = n
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

func New(opts ...Option) *Simulator {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Simulator{
		integrator: integrators.NewVerlet(),
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
		maxSamples: DefaultMaxSamples,
		log:        quiet,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Simulate runs p with the default metrics attached.
func Simulate(p dynamo.Params) (*dynamo.Result, error) {
	s := New()
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	return s.Run(p)
}

// Run validates p, derives the initial state and integrates it for
// p.Steps() fixed timesteps. Every error is returned before the first step.
func (s *Simulator) Run(p dynamo.Params) (*dynamo.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	steps := p.Steps()
	if steps >= s.maxSamples {
		return nil, &dynamo.ParamError{
			Field:  "duration",
			Value:  p.Duration(),
			Reason: fmt.Sprintf("%d samples exceed the limit of %d", steps+1, s.maxSamples),
		}
	}

	props, err := elements.Get(p.Element())
	if err != nil {
		return nil, err
	}

	model, err := physics.New(p.Model(), props)
	if err != nil {
		return nil, err
	}

	x, err := physics.InitialState(model, props, p.Temperature())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := dynamo.NewResult(steps + 1)

	for _, m := range s.metrics {
		m.Reset()
	}

	s.record(result, x)

	dt := float32(p.Timestep())
	for i := 0; i < steps; i++ {
		s.integrator.Step(model, props.MassAU, &x, dt)
		s.record(result, x)
	}

	offset := OffsetDistances(result.Distances)

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	entry := s.log.WithFields(logrus.Fields{
		"model":   p.Model(),
		"element": p.Element(),
		"steps":   steps,
		"offset":  offset,
		"elapsed": time.Since(start),
	})
	if !x.IsValid() {
		entry.Warnf("final state is not finite: %v", x)
	} else {
		entry.Debug("simulation complete")
	}

	return result, nil
}

func (s *Simulator) record(r *dynamo.Result, x dynamo.State) {
	r.Append(x)
	for _, m := range s.metrics {
		m.Observe(x)
	}
	for _, obs := range s.observers {
		obs.OnStep(x)
	}
}
