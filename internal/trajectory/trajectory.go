// Package trajectory provides caller-side operations over integrated
// trajectories: burn-in, stride subsampling, component extraction, and
// divergence detection. None of these affect integration itself.
package trajectory

import "github.com/tmolnar/chaoscope/internal/dynamo"

// Trajectory is an ordered sequence of phase-space states produced by one
// integration call. The caller owns the backing storage.
type Trajectory []dynamo.State

// BurnIn discards the first n states, excluding transient behavior before
// the flow reaches the attractor. Discarding more states than exist yields
// an empty trajectory.
func (t Trajectory) BurnIn(n int) Trajectory {
	if n <= 0 {
		return t
	}
	if n >= len(t) {
		return Trajectory{}
	}
	return t[n:]
}

// Stride keeps every nth state, purely a rendering-performance measure.
// Values below 1 are treated as 1.
func (t Trajectory) Stride(n int) Trajectory {
	if n <= 1 {
		return t
	}
	out := make(Trajectory, 0, (len(t)+n-1)/n)
	for i := 0; i < len(t); i += n {
		out = append(out, t[i])
	}
	return out
}

// Component extracts one axis (0=x, 1=y, 2=z) as a flat series.
func (t Trajectory) Component(axis int) []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s[axis]
	}
	return out
}

// FirstNonFinite returns the index of the first state containing NaN or
// ±Inf, or -1 when the whole trajectory is finite. Used by the presentation
// layer to warn about divergent parameter choices.
func (t Trajectory) FirstNonFinite() int {
	for i, s := range t {
		if !s.IsFinite() {
			return i
		}
	}
	return -1
}

// Bounds returns the componentwise minimum and maximum over the trajectory.
// An empty trajectory yields zero bounds.
func (t Trajectory) Bounds() (min, max dynamo.State) {
	if len(t) == 0 {
		return
	}
	min, max = t[0], t[0]
	for _, s := range t[1:] {
		for i := 0; i < 3; i++ {
			if s[i] < min[i] {
				min[i] = s[i]
			}
			if s[i] > max[i] {
				max[i] = s[i]
			}
		}
	}
	return
}
