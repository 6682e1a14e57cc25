package factor

import "errors"

// Sentinel errors for factor construction and algebra.
var (
	// ErrEmptyScope indicates New was called with no variables.
	ErrEmptyScope = errors.New("factor: scope must not be empty")

	// ErrDuplicateVariable indicates a scope names the same variable twice.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrTableSize indicates the table length does not equal the product of
	// the scope cardinalities.
	ErrTableSize = errors.New("factor: table length does not match scope")

	// ErrBadValue indicates a negative, NaN, or infinite table entry.
	ErrBadValue = errors.New("factor: table entries must be finite and non-negative")

	// ErrNotACPD indicates a conditional row does not sum to 1.
	ErrNotACPD = errors.New("factor: conditional rows must each sum to 1")

	// ErrIncompleteAssignment indicates an assignment does not cover the scope.
	ErrIncompleteAssignment = errors.New("factor: assignment does not cover scope")

	// ErrNotInScope indicates the requested variable is not in the scope.
	ErrNotInScope = errors.New("factor: variable not in scope")

	// ErrScopeNotSubset indicates a divisor scope outside the dividend scope.
	ErrScopeNotSubset = errors.New("factor: divisor scope must be a subset of dividend scope")

	// ErrDivideByZero indicates x/0 with x != 0 during Divide.
	ErrDivideByZero = errors.New("factor: division by zero")

	// ErrZeroMass indicates Normalize on a factor whose total mass is ~0.
	ErrZeroMass = errors.New("factor: cannot normalize zero total mass")
)
