package analysis

import (
	"math"

	"github.com/tmolnar/chaoscope/internal/dynamo"
)

// LargestLyapunov estimates the largest Lyapunov exponent of a vector field
// by the trajectory separation method: advance the reference state and a
// perturbed copy in lockstep, accumulate the log growth of their
// separation, and renormalize whenever it gets large. A positive result
// indicates chaos.
func LargestLyapunov(f dynamo.VectorField, st dynamo.Stepper, p dynamo.Params, s0 dynamo.State, dt float64, steps int, perturbation float64) float64 {
	if steps <= 0 || dt <= 0 || perturbation <= 0 {
		return 0
	}

	x := s0
	xp := s0
	xp[0] += perturbation
	d0 := perturbation

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		x = st.Step(f, x, p, dt)
		xp = st.Step(f, xp, p, dt)

		if !x.IsFinite() || !xp.IsFinite() {
			break
		}

		sep := xp.Sub(x).Norm()
		if sep <= 0 {
			// The pair collapsed below float resolution; reseed it.
			xp = x
			xp[0] += d0
			continue
		}

		sumLog += math.Log(sep / d0)
		count++

		// Renormalize back to the base separation so the pair stays in the
		// linear regime and each step's growth is counted once.
		xp = x.Add(xp.Sub(x).Scale(d0 / sep))
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
