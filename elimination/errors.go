package elimination

import "errors"

// Sentinel errors for exact inference.
var (
	// ErrInvalidQuery indicates malformed targets or evidence.
	ErrInvalidQuery = errors.New("elimination: invalid query")

	// ErrZeroEvidence indicates evidence with zero probability under the model.
	ErrZeroEvidence = errors.New("elimination: evidence has zero probability")

	// ErrBadOrder indicates an override order that is not a permutation of
	// the hidden variables.
	ErrBadOrder = errors.New("elimination: order must cover exactly the hidden variables")
)
