package estimate

import "errors"

// Sentinel errors for parameter estimation.
var (
	// ErrEmptyDataset indicates estimation was asked to fit from no records.
	ErrEmptyDataset = errors.New("estimate: empty dataset")

	// ErrIncompleteRecord indicates a record is missing a variable of the
	// fitted scope; this package does not handle missing data.
	ErrIncompleteRecord = errors.New("estimate: incomplete record")

	// ErrInsufficientData indicates a parent configuration with zero
	// observations and zero smoothing, leaving its row undefined.
	ErrInsufficientData = errors.New("estimate: no observations for parent configuration")

	// ErrBadSmoothing indicates a negative pseudo-count.
	ErrBadSmoothing = errors.New("estimate: smoothing must be non-negative")
)
