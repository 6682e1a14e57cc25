package sampling

import "errors"

// Sentinel errors for the sampling procedures.
var (
	// ErrInvalidQuery indicates malformed targets or evidence.
	ErrInvalidQuery = errors.New("sampling: invalid query")

	// ErrBadSampleCount indicates a non-positive sample count or a negative
	// burn-in / thinning setting.
	ErrBadSampleCount = errors.New("sampling: sample, burn-in, and thinning counts must be sensible")

	// ErrZeroWeight indicates every drawn particle carried zero weight -
	// the evidence is impossible under the model.
	ErrZeroWeight = errors.New("sampling: all particle weights are zero")

	// ErrDegenerateConditional indicates a full conditional with zero total
	// mass during a Gibbs sweep; the chain cannot leave such a state.
	ErrDegenerateConditional = errors.New("sampling: full conditional has zero mass")
)
