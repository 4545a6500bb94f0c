package dynamo

import "errors"

// Domain errors surfaced at the core boundary. Divergent trajectories
// (NaN/Inf states) are deliberately not errors: they are valid output of
// unstable parameter choices and left to the presentation layer.
var (
	// ErrUnknownAttractor indicates a registry lookup outside the fixed
	// supported set.
	ErrUnknownAttractor = errors.New("dynamo: unknown attractor")

	// ErrMissingParameter indicates a parameter set without a coefficient
	// the chosen vector field requires.
	ErrMissingParameter = errors.New("dynamo: missing parameter")
)
