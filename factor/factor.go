package factor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bayes/core"
)

// CPDEpsilon is the tolerance used to accept a conditional row as
// normalized and to reject a total mass as degenerate.
const CPDEpsilon = 1e-9

// Factor is an ordered scope of discrete variables plus a dense table of
// non-negative reals over the Cartesian product of their domains.
//
// The table is row-major over the scope order: the last variable varies
// fastest. A Factor is immutable after construction; all operations return
// new values.
type Factor struct {
	scope []core.Variable // ordered scope; empty for the identity factor
	table []float64       // len == product of scope cardinalities
	cpd   bool            // true when built as a per-row normalized CPD
}

// Identity returns the empty-scope unit factor: the multiplicative identity
// of Product, holding the single value 1.
func Identity() *Factor {
	return &Factor{table: []float64{1}}
}

// New constructs a Factor over scope with the given row-major table.
// The table is copied. Returns ErrEmptyScope, ErrDuplicateVariable,
// ErrTableSize, or ErrBadValue on invalid input.
func New(scope []core.Variable, table []float64) (*Factor, error) {
	if len(scope) == 0 {
		return nil, ErrEmptyScope
	}
	if err := checkScope(scope); err != nil {
		return nil, err
	}
	if len(table) != Size(scope) {
		return nil, fmt.Errorf("%w: got %d entries, scope needs %d", ErrTableSize, len(table), Size(scope))
	}
	for _, p := range table {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: %v", ErrBadValue, p)
		}
	}
	t := make([]float64, len(table))
	copy(t, table)

	return &Factor{scope: cloneScope(scope), table: t}, nil
}

// NewCPD constructs the conditional distribution P(child | parents).
// The scope is parents followed by child, so every contiguous block of
// child.Card entries is one conditional row and must sum to 1 within
// CPDEpsilon. Returns ErrNotACPD when a row does not.
func NewCPD(child core.Variable, parents []core.Variable, table []float64) (*Factor, error) {
	scope := make([]core.Variable, 0, len(parents)+1)
	scope = append(scope, parents...)
	scope = append(scope, child)

	f, err := New(scope, table)
	if err != nil {
		return nil, err
	}
	for row := 0; row < len(f.table); row += child.Card {
		sum := 0.0
		for i := row; i < row+child.Card; i++ {
			sum += f.table[i]
		}
		if math.Abs(sum-1) > CPDEpsilon {
			return nil, fmt.Errorf("%w: row %d of %q sums to %v", ErrNotACPD, row/child.Card, child.Name, sum)
		}
	}
	f.cpd = true

	return f, nil
}

// Scope returns a copy of the ordered scope.
func (f *Factor) Scope() []core.Variable {
	return cloneScope(f.scope)
}

// Values returns a copy of the row-major table.
func (f *Factor) Values() []float64 {
	out := make([]float64, len(f.table))
	copy(out, f.table)

	return out
}

// Len returns the number of table entries.
func (f *Factor) Len() int {
	return len(f.table)
}

// IsIdentity reports whether the factor has empty scope.
func (f *Factor) IsIdentity() bool {
	return len(f.scope) == 0
}

// IsCPD reports whether the factor was built as a conditional distribution.
func (f *Factor) IsCPD() bool {
	return f.cpd
}

// Child returns the conditioned variable of a CPD (the last scope entry).
// Calling Child on a non-CPD factor returns false.
func (f *Factor) Child() (core.Variable, bool) {
	if !f.cpd || len(f.scope) == 0 {
		return core.Variable{}, false
	}

	return f.scope[len(f.scope)-1], true
}

// InScope reports whether the named variable appears in the scope.
func (f *Factor) InScope(name string) bool {
	for _, v := range f.scope {
		if v.Name == name {
			return true
		}
	}

	return false
}

// Value looks up the table entry for a full assignment over the scope.
// The assignment may cover a superset of the scope. Returns
// ErrIncompleteAssignment when a scope variable is missing and
// core.ErrStateOutOfRange when an index falls outside its domain.
func (f *Factor) Value(a core.Assignment) (float64, error) {
	idx, err := Offset(f.scope, a)
	if err != nil {
		return 0, err
	}

	return f.table[idx], nil
}

// Sum returns the total mass of the factor.
func (f *Factor) Sum() float64 {
	sum := 0.0
	for _, p := range f.table {
		sum += p
	}

	return sum
}

// Each invokes fn for every joint assignment of the scope, in table order,
// with the assignment and the table entry. The assignment passed to fn is
// reused between calls; clone it to retain.
func (f *Factor) Each(fn func(a core.Assignment, p float64)) {
	states := make([]int, len(f.scope))
	a := core.NewAssignment()
	for i := range f.table {
		for k, v := range f.scope {
			a[v.Name] = states[k]
		}
		fn(a, f.table[i])
		odometer(states, f.scope)
	}
}

// Size returns the table length a factor over scope requires: the product
// of the scope cardinalities (1 for an empty scope).
func Size(scope []core.Variable) int {
	n := 1
	for _, v := range scope {
		n *= v.Card
	}

	return n
}

// Offset computes the row-major table index of an assignment over scope.
// The assignment may cover a superset of scope.
func Offset(scope []core.Variable, a core.Assignment) (int, error) {
	idx := 0
	for _, v := range scope {
		s, ok := a.Get(v.Name)
		if !ok {
			return 0, fmt.Errorf("%w: missing %q", ErrIncompleteAssignment, v.Name)
		}
		if !v.Valid(s) {
			return 0, fmt.Errorf("%w: %d for %q (card %d)", core.ErrStateOutOfRange, s, v.Name, v.Card)
		}
		idx = idx*v.Card + s
	}

	return idx, nil
}

// checkScope rejects duplicate variable names.
func checkScope(scope []core.Variable) error {
	seen := make(map[string]struct{}, len(scope))
	for _, v := range scope {
		if _, dup := seen[v.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateVariable, v.Name)
		}
		seen[v.Name] = struct{}{}
	}

	return nil
}

// cloneScope copies a scope slice (Variables are value types).
func cloneScope(scope []core.Variable) []core.Variable {
	out := make([]core.Variable, len(scope))
	copy(out, scope)

	return out
}

// odometer advances states to the next joint configuration in table order
// (last variable fastest), wrapping to all zeros after the final one.
func odometer(states []int, scope []core.Variable) {
	for k := len(states) - 1; k >= 0; k-- {
		states[k]++
		if states[k] < scope[k].Card {
			return
		}
		states[k] = 0
	}
}
