package sim

import (
	"context"
	"math"

	g "github.com/onsi/ginkgo/v2"
	o "github.com/onsi/gomega"

	"github.com/san-kum/diatomic/internal/dynamo"
)

var _ = g.Describe("a harmonic hydrogen bond at room temperature", func() {
	var result *dynamo.Result

	g.BeforeEach(func() {
		var err error
		result, err = Simulate(dynamo.NewParams(dynamo.ModelHarmonic, "H", 10.0, 0.1, 300))
		o.Expect(err).NotTo(o.HaveOccurred())
	})

	g.It("records the initial sample plus one per step", func() {
		o.Expect(result.Len()).To(o.Equal(101))
		o.Expect(result.Times[0]).To(o.Equal(0.0))
		o.Expect(result.Times[100]).To(o.BeNumerically("~", 10.0, 1e-4))
	})

	g.It("starts at rest with all energy in the spring", func() {
		o.Expect(result.Kinetic[0]).To(o.Equal(0.0))
		o.Expect(result.Potential[0]).To(o.Equal(result.Total[0]))
		// k_B T in hartree
		o.Expect(result.Potential[0]).To(o.BeNumerically("~", 300*3.166811e-6, 1e-6))
	})

	g.It("keeps the time axis evenly spaced", func() {
		for i := 1; i < result.Len(); i++ {
			o.Expect(result.Times[i] - result.Times[i-1]).To(o.BeNumerically("~", 0.1, 1e-5))
		}
	})
})

var _ = g.Describe("a Morse hydrogen bond", func() {
	g.It("refuses a temperature the well cannot hold", func() {
		result, err := Simulate(dynamo.NewParams(dynamo.ModelMorse, "H", 5.0, 0.05, 60000))
		o.Expect(err).To(o.MatchError(dynamo.ErrInvalidInitialCondition))
		o.Expect(result).To(o.BeNil())

		var ice *dynamo.InitialConditionError
		o.Expect(err).To(o.BeAssignableToTypeOf(ice))
	})

	// k_B·T/D is about 0.087 at 5000K, well inside the Morse inversion.
	g.It("stays finite at 5000K", func() {
		result, err := Simulate(dynamo.NewParams(dynamo.ModelMorse, "H", 5.0, 0.05, 5000))
		o.Expect(err).NotTo(o.HaveOccurred())
		o.Expect(result.Len()).To(o.Equal(101))
		for i := range result.Total {
			o.Expect(math.IsNaN(result.Displacements[i])).To(o.BeFalse())
			o.Expect(math.IsInf(result.Total[i], 0)).To(o.BeFalse())
		}
	})
})

var _ = g.Describe("a Lennard-Jones argon dimer", func() {
	g.It("samples a short run with constant energy", func() {
		result, err := Simulate(dynamo.NewParams(dynamo.ModelLennardJones, "Ar", 20.0, 0.2, 100))
		o.Expect(err).NotTo(o.HaveOccurred())
		o.Expect(result.Len()).To(o.Equal(101))

		e0 := result.Total[0]
		for _, e := range result.Total {
			o.Expect(math.Abs(e-e0) / e0).To(o.BeNumerically("<", 1e-3))
		}
	})

	g.It("oscillates around the equilibrium separation", func() {
		result, err := Simulate(dynamo.NewParams(dynamo.ModelLennardJones, "Ar", 200000, 20, 100))
		o.Expect(err).NotTo(o.HaveOccurred())

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, d := range result.Displacements {
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
		}
		o.Expect(lo).To(o.BeNumerically("<", 0))
		o.Expect(hi).To(o.BeNumerically(">", 0))
		o.Expect(result.Metrics["energy_drift"]).To(o.BeNumerically("<", 1e-2))
	})
})

var _ = g.Describe("an unknown model", func() {
	g.It("is rejected before any step", func() {
		result, err := Simulate(dynamo.NewParams("xyz", "H", 1.0, 0.1, 300))
		o.Expect(err).To(o.MatchError(dynamo.ErrUnknownModel))
		o.Expect(result).To(o.BeNil())
	})
})

var _ = g.Describe("Sweep", func() {
	g.It("returns results in input order", func() {
		params := []dynamo.Params{
			dynamo.NewParams(dynamo.ModelHarmonic, "H", 10, 0.1, 300),
			dynamo.NewParams(dynamo.ModelMorse, "H", 5, 0.5, 300),
			dynamo.NewParams(dynamo.ModelLennardJones, "Hg", 20, 0.2, 300),
		}

		results, err := Sweep(context.Background(), params)
		o.Expect(err).NotTo(o.HaveOccurred())
		o.Expect(results).To(o.HaveLen(3))
		o.Expect(results[0].Len()).To(o.Equal(101))
		o.Expect(results[1].Len()).To(o.Equal(11))
		o.Expect(results[2].Len()).To(o.Equal(101))

		for i, p := range params {
			single, err := Simulate(p)
			o.Expect(err).NotTo(o.HaveOccurred())
			o.Expect(results[i].Displacements).To(o.Equal(single.Displacements))
		}
	})

	g.It("reports the failing run", func() {
		params := []dynamo.Params{
			dynamo.NewParams(dynamo.ModelHarmonic, "H", 1, 0.1, 300),
			dynamo.NewParams(dynamo.ModelHarmonic, "Xe", 1, 0.1, 300),
		}

		results, err := Sweep(context.Background(), params)
		o.Expect(err).To(o.MatchError(dynamo.ErrUnknownElement))
		o.Expect(err.Error()).To(o.ContainSubstring("run 1 (harmonic/Xe)"))
		o.Expect(results).To(o.BeNil())
	})

	g.It("does nothing once the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Sweep(ctx, []dynamo.Params{dynamo.NewParams(dynamo.ModelHarmonic, "H", 1, 0.1, 300)})
		o.Expect(err).To(o.MatchError(context.Canceled))
	})
})
