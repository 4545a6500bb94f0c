package field

import (
	"fmt"
	"sort"

	"github.com/tmolnar/chaoscope/internal/dynamo"
)

// Definition bundles everything needed to integrate and describe one
// attractor system: the vector field itself, default coefficients, a
// default initial condition, and display metadata.
type Definition struct {
	Name        string
	Field       dynamo.VectorField
	Params      dynamo.Params
	Init        dynamo.State
	Equations   []string
	Description string
	Tooltips    map[string]string
}

// Coefficients returns the required parameter names in sorted order.
func (d Definition) Coefficients() []string {
	names := make([]string, 0, len(d.Params))
	for name := range d.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateParams checks that p carries every coefficient the field
// requires. Values are not range-checked: any finite float is accepted,
// including ones that make the system divergent.
func (d Definition) ValidateParams(p dynamo.Params) error {
	for _, name := range d.Coefficients() {
		if _, ok := p[name]; !ok {
			return fmt.Errorf("%w: %s requires %q", dynamo.ErrMissingParameter, d.Name, name)
		}
	}
	return nil
}

// MergeParams overlays overrides onto the field's defaults and returns a
// fresh parameter set. Unknown override keys are ignored.
func (d Definition) MergeParams(overrides dynamo.Params) dynamo.Params {
	merged := d.Params.Clone()
	for name := range merged {
		if v, ok := overrides[name]; ok {
			merged[name] = v
		}
	}
	return merged
}
