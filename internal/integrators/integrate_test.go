package integrators_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tmolnar/chaoscope/internal/dynamo"
	"github.com/tmolnar/chaoscope/internal/field"
	"github.com/tmolnar/chaoscope/internal/integrators"
)

// rotation is a linear field whose exact flow is a unit circle in the
// xy plane, giving a closed-form answer to measure accuracy against.
type rotation struct{}

func (rotation) Derive(s dynamo.State, _ dynamo.Params) dynamo.State {
	return dynamo.State{s[1], -s[0], 0}
}

var _ = Describe("Integrate", func() {
	var rk4 dynamo.Stepper

	BeforeEach(func() {
		rk4 = integrators.NewRK4()
	})

	Describe("trajectory shape", func() {
		It("returns an empty non-nil trajectory for zero steps", func() {
			for _, def := range field.All() {
				traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 0)
				Expect(traj).NotTo(BeNil())
				Expect(traj).To(BeEmpty())
			}
		})

		It("returns an empty trajectory for negative steps", func() {
			def, err := field.Lookup("lorenz")
			Expect(err).NotTo(HaveOccurred())
			traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, -5)
			Expect(traj).To(BeEmpty())
		})

		It("returns exactly one state per step", func() {
			def, _ := field.Lookup("lorenz")
			for _, steps := range []int{1, 2, 100, 5000} {
				traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, steps)
				Expect(traj).To(HaveLen(steps))
			}
		})

		It("excludes the initial condition from the trajectory", func() {
			def, _ := field.Lookup("lorenz")
			traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 1)
			one := rk4.Step(def.Field, def.Init, def.Params, 0.01)
			Expect(traj[0]).To(Equal(one))
			Expect(traj[0]).NotTo(Equal(def.Init))
		})

		It("produces the full length even for a tiny time step", func() {
			def, _ := field.Lookup("lorenz")
			traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 1e-6, 50)
			Expect(traj).To(HaveLen(50))
		})
	})

	Describe("fixed values", func() {
		It("reproduces the Lorenz trajectory from the default seed", func() {
			def, _ := field.Lookup("lorenz")
			traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 2)

			Expect(traj[0][0]).To(BeNumerically("~", 0.0917927615603221, 1e-12))
			Expect(traj[0][1]).To(BeNumerically("~", 0.026633979803499845, 1e-12))
			Expect(traj[0][2]).To(BeNumerically("~", 1.263703385089278e-05, 1e-12))

			Expect(traj[1][0]).To(BeNumerically("~", 0.08679257054445175, 1e-12))
			Expect(traj[1][1]).To(BeNumerically("~", 0.05117622470318646, 1e-12))
			Expect(traj[1][2]).To(BeNumerically("~", 4.655227623576025e-05, 1e-12))
		})

		It("reproduces a single Rossler step from the default seed", func() {
			def, _ := field.Lookup("rossler")
			traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 1)
			Expect(traj[0][0]).To(BeNumerically("~", -0.010019652298756837, 1e-12))
			Expect(traj[0][1]).To(BeNumerically("~", 1.0019519021594168, 1e-12))
			Expect(traj[0][2]).To(BeNumerically("~", 0.0019440031280490316, 1e-12))
		})

		It("reproduces a single Thomas step from the default seed", func() {
			def, _ := field.Lookup("thomas")
			traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 1)
			Expect(traj[0][0]).To(BeNumerically("~", 0.09979204716103773, 1e-12))
			Expect(traj[0][1]).To(BeNumerically("~", 4.981300795808854e-06, 1e-12))
			Expect(traj[0][2]).To(BeNumerically("~", 0.0009962614321481784, 1e-12))
		})

		It("reproduces a single Aizawa step from the default seed", func() {
			def, _ := field.Lookup("aizawa")
			traj := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 1)
			Expect(traj[0][0]).To(BeNumerically("~", 0.0992445649670063, 1e-12))
			Expect(traj[0][1]).To(BeNumerically("~", 0.003474978811527109, 1e-12))
			Expect(traj[0][2]).To(BeNumerically("~", 0.00592874017687416, 1e-12))
		})
	})

	Describe("determinism", func() {
		It("is bit-identical across repeated calls", func() {
			def, _ := field.Lookup("lorenz")
			a := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 1000)
			b := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 1000)
			Expect(a).To(Equal(b))
		})

		It("is bit-identical across concurrent calls", func() {
			def, _ := field.Lookup("rossler")
			ref := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 500)

			var wg sync.WaitGroup
			results := make([][]dynamo.State, 8)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					st := integrators.NewRK4()
					results[i] = integrators.Integrate(st, def.Field, def.Params, def.Init, 0.01, 500)
				}(i)
			}
			wg.Wait()

			for _, got := range results {
				Expect(got).To(Equal(ref))
			}
		})

		It("allocates a fresh trajectory on every call", func() {
			def, _ := field.Lookup("lorenz")
			a := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 10)
			b := integrators.Integrate(rk4, def.Field, def.Params, def.Init, 0.01, 10)
			a[0] = dynamo.State{99, 99, 99}
			Expect(b[0]).NotTo(Equal(a[0]))
		})
	})

	Describe("fixed points", func() {
		It("stays exactly at the Lorenz origin", func() {
			def, _ := field.Lookup("lorenz")
			traj := integrators.Integrate(rk4, def.Field, def.Params, dynamo.State{}, 0.01, 100)
			for _, s := range traj {
				Expect(s).To(Equal(dynamo.State{}))
			}
		})

		It("stays exactly at the Thomas origin", func() {
			def, _ := field.Lookup("thomas")
			traj := integrators.Integrate(rk4, def.Field, def.Params, dynamo.State{}, 0.01, 100)
			for _, s := range traj {
				Expect(s).To(Equal(dynamo.State{}))
			}
		})
	})

	Describe("accuracy", func() {
		It("tracks a closed-form circular orbit to fourth order", func() {
			traj := integrators.Integrate(rk4, rotation{}, nil, dynamo.State{1, 0, 0}, 0.01, 100)
			last := traj[len(traj)-1]
			Expect(last[0]).To(BeNumerically("~", math.Cos(1), 1e-9))
			Expect(last[1]).To(BeNumerically("~", -math.Sin(1), 1e-9))
			Expect(last[2]).To(BeZero())
		})

		It("keeps Euler within coarse range of the same orbit", func() {
			euler := integrators.NewEuler()
			traj := integrators.Integrate(euler, rotation{}, nil, dynamo.State{1, 0, 0}, 0.01, 100)
			last := traj[len(traj)-1]
			Expect(last[0]).To(BeNumerically("~", math.Cos(1), 0.01))
			Expect(last[1]).To(BeNumerically("~", -math.Sin(1), 0.01))
		})
	})
})

var _ = Describe("New", func() {
	It("builds each named stepper", func() {
		for _, name := range integrators.Names() {
			st, err := integrators.New(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(st).NotTo(BeNil())
		}
	})

	It("rejects unknown names", func() {
		_, err := integrators.New("rk45")
		Expect(err).To(MatchError(ContainSubstring("unknown integrator")))
	})
})
