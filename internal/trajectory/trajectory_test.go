package trajectory

import (
	"math"
	"testing"

	"github.com/tmolnar/chaoscope/internal/dynamo"
)

func ramp(n int) Trajectory {
	t := make(Trajectory, n)
	for i := range t {
		t[i] = dynamo.State{float64(i), float64(i * 10), float64(i * 100)}
	}
	return t
}

func TestBurnIn(t *testing.T) {
	traj := ramp(10)

	tests := []struct {
		name    string
		n       int
		wantLen int
		first   float64
	}{
		{"zero keeps all", 0, 10, 0},
		{"negative keeps all", -3, 10, 0},
		{"partial", 4, 6, 4},
		{"exact length empties", 10, 0, 0},
		{"beyond length empties", 25, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := traj.BurnIn(tt.n)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0][0] != tt.first {
				t.Errorf("first state x = %v, want %v", got[0][0], tt.first)
			}
		})
	}
}

func TestStride(t *testing.T) {
	traj := ramp(10)

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{"one keeps all", 1, 10},
		{"zero treated as one", 0, 10},
		{"two halves", 2, 5},
		{"three", 3, 4},
		{"beyond length keeps first", 99, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := traj.Stride(tt.n)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if got[0] != traj[0] {
				t.Errorf("first state = %v, want %v", got[0], traj[0])
			}
		})
	}

	t.Run("keeps every nth state", func(t *testing.T) {
		got := traj.Stride(3)
		for i, s := range got {
			if s[0] != float64(i*3) {
				t.Errorf("element %d has x = %v, want %v", i, s[0], float64(i*3))
			}
		}
	})
}

func TestBurnInThenStride(t *testing.T) {
	traj := ramp(100)
	got := traj.BurnIn(50).Stride(2)
	if len(got) != 25 {
		t.Fatalf("len = %d, want 25", len(got))
	}
	if got[0][0] != 50 || got[1][0] != 52 {
		t.Errorf("unexpected leading states: %v, %v", got[0], got[1])
	}
}

func TestComponent(t *testing.T) {
	traj := ramp(5)
	for axis, scale := range []float64{1, 10, 100} {
		series := traj.Component(axis)
		if len(series) != 5 {
			t.Fatalf("axis %d: len = %d, want 5", axis, len(series))
		}
		for i, v := range series {
			if v != float64(i)*scale {
				t.Errorf("axis %d element %d = %v, want %v", axis, i, v, float64(i)*scale)
			}
		}
	}
}

func TestFirstNonFinite(t *testing.T) {
	traj := ramp(5)
	if got := traj.FirstNonFinite(); got != -1 {
		t.Errorf("finite trajectory reported divergence at %d", got)
	}
	if got := (Trajectory{}).FirstNonFinite(); got != -1 {
		t.Errorf("empty trajectory reported divergence at %d", got)
	}

	traj[3][1] = math.NaN()
	if got := traj.FirstNonFinite(); got != 3 {
		t.Errorf("NaN at index 3 reported as %d", got)
	}

	traj[2][0] = math.Inf(-1)
	if got := traj.FirstNonFinite(); got != 2 {
		t.Errorf("earliest non-finite state reported as %d, want 2", got)
	}
}

func TestBounds(t *testing.T) {
	traj := Trajectory{
		{1, -2, 3},
		{-5, 7, 0},
		{2, 0, -9},
	}
	min, max := traj.Bounds()
	if min != (dynamo.State{-5, -2, -9}) {
		t.Errorf("min = %v", min)
	}
	if max != (dynamo.State{2, 7, 3}) {
		t.Errorf("max = %v", max)
	}

	min, max = Trajectory{}.Bounds()
	if min != (dynamo.State{}) || max != (dynamo.State{}) {
		t.Errorf("empty bounds = %v, %v, want zeros", min, max)
	}
}
