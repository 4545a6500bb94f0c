package field

import (
	"fmt"
	"strings"

	"github.com/tmolnar/chaoscope/internal/dynamo"
)

// The supported set is closed: adding an attractor is a code change, not a
// runtime operation. Constructors return fresh Definitions so callers can
// never mutate registry state.
var registry = map[string]func() Definition{
	"lorenz":  lorenzDefinition,
	"rossler": rosslerDefinition,
	"thomas":  thomasDefinition,
	"aizawa":  aizawaDefinition,
}

// Lookup returns the definition for a named attractor. The match is
// case-insensitive; unrecognized names fail with
// [dynamo.ErrUnknownAttractor].
func Lookup(name string) (Definition, error) {
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q (supported: %s)",
			dynamo.ErrUnknownAttractor, name, strings.Join(Names(), ", "))
	}
	return fn(), nil
}

// Names returns the canonical attractor names in sorted order.
func Names() []string {
	return []string{"Aizawa", "Lorenz", "Rossler", "Thomas"}
}

// All returns a fresh definition for every supported attractor, ordered
// by name.
func All() []Definition {
	defs := make([]Definition, 0, len(registry))
	for _, name := range Names() {
		def, _ := Lookup(name)
		defs = append(defs, def)
	}
	return defs
}
