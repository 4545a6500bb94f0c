package integrators_test

import (
	"testing"

	"github.com/tmolnar/chaoscope/internal/field"
	"github.com/tmolnar/chaoscope/internal/integrators"
)

func BenchmarkRK4StepLorenz(b *testing.B) {
	def, _ := field.Lookup("lorenz")
	st := integrators.NewRK4()
	s := def.Init
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = st.Step(def.Field, s, def.Params, 0.01)
	}
	_ = s
}

func BenchmarkIntegrateLorenz10k(b *testing.B) {
	def, _ := field.Lookup("lorenz")
	st := integrators.NewRK4()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = integrators.Integrate(st, def.Field, def.Params, def.Init, 0.01, 10000)
	}
}

func BenchmarkIntegrateAizawa10k(b *testing.B) {
	def, _ := field.Lookup("aizawa")
	st := integrators.NewRK4()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = integrators.Integrate(st, def.Field, def.Params, def.Init, 0.01, 10000)
	}
}
