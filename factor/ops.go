package factor

import (
	"fmt"

	"github.com/katalvlaran/bayes/core"
)

// Product computes the factor product f·g: the scope is the union of both
// scopes (f's order first, then g's unseen variables) and every entry is the
// product of the two operands at the matching sub-assignments. Disjoint
// scopes yield a plain outer product; the identity factor is absorbed.
//
// Complexity: O(|result table| · |result scope|).
func (f *Factor) Product(g *Factor) *Factor {
	if f.IsIdentity() {
		return g.clone()
	}
	if g.IsIdentity() {
		return f.clone()
	}

	// 1. Union scope: f's variables in order, then g's not already present.
	scope := cloneScope(f.scope)
	for _, v := range g.scope {
		if !f.InScope(v.Name) {
			scope = append(scope, v)
		}
	}

	// 2. Per-result-position stride contributions into each operand.
	fStride := strideInto(f.scope, scope)
	gStride := strideInto(g.scope, scope)

	// 3. Walk the result table once with an odometer over the joint states.
	table := make([]float64, Size(scope))
	states := make([]int, len(scope))
	for i := range table {
		fi, gi := 0, 0
		for k, s := range states {
			fi += s * fStride[k]
			gi += s * gStride[k]
		}
		table[i] = f.table[fi] * g.table[gi]
		odometer(states, scope)
	}

	return &Factor{scope: scope, table: table}
}

// Divide computes f/g entrywise over f's scope, with 0/0 defined as 0.
// Returns ErrScopeNotSubset unless g's scope is a subset of f's, and
// ErrDivideByZero on x/0 with x != 0.
func (f *Factor) Divide(g *Factor) (*Factor, error) {
	if g.IsIdentity() {
		return f.clone(), nil
	}
	for _, v := range g.scope {
		if !f.InScope(v.Name) {
			return nil, fmt.Errorf("%w: %q", ErrScopeNotSubset, v.Name)
		}
	}

	gStride := strideInto(g.scope, f.scope)

	table := make([]float64, len(f.table))
	states := make([]int, len(f.scope))
	for i := range table {
		gi := 0
		for k, s := range states {
			gi += s * gStride[k]
		}
		num, den := f.table[i], g.table[gi]
		switch {
		case den != 0:
			table[i] = num / den
		case num == 0:
			table[i] = 0
		default:
			return nil, fmt.Errorf("%w: %v / 0", ErrDivideByZero, num)
		}
		odometer(states, f.scope)
	}

	return &Factor{scope: cloneScope(f.scope), table: table}, nil
}

// Marginalize sums the named variable out of the factor. Returns
// ErrNotInScope when the variable is absent. Marginalizing the last scope
// variable yields the empty-scope constant holding the total mass.
func (f *Factor) Marginalize(name string) (*Factor, error) {
	pos := -1
	for i, v := range f.scope {
		if v.Name == name {
			pos = i

			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotInScope, name)
	}

	// Row-major index arithmetic: entries that differ only in the summed
	// variable sit `inner` apart, in blocks of `inner*card`.
	inner := 1
	for _, v := range f.scope[pos+1:] {
		inner *= v.Card
	}
	card := f.scope[pos].Card
	block := inner * card

	scope := make([]core.Variable, 0, len(f.scope)-1)
	scope = append(scope, f.scope[:pos]...)
	scope = append(scope, f.scope[pos+1:]...)

	table := make([]float64, Size(scope))
	for i, p := range f.table {
		table[(i/block)*inner+i%inner] += p
	}

	return &Factor{scope: scope, table: table}, nil
}

// Reduce fixes every scope variable assigned in evidence to its observed
// state and drops it from the scope. Evidence for variables outside the
// scope is ignored. Reducing the whole scope yields the empty-scope constant
// holding the selected entry (the evidence likelihood contribution).
// Returns core.ErrStateOutOfRange when an observed index is invalid.
func (f *Factor) Reduce(evidence core.Assignment) (*Factor, error) {
	// 1. Locate fixed positions and build the surviving scope.
	fixed := make([]int, len(f.scope)) // fixed state per position, -1 = free
	scope := make([]core.Variable, 0, len(f.scope))
	any := false
	for i, v := range f.scope {
		if s, ok := evidence.Get(v.Name); ok {
			if !v.Valid(s) {
				return nil, fmt.Errorf("%w: %d for %q (card %d)", core.ErrStateOutOfRange, s, v.Name, v.Card)
			}
			fixed[i] = s
			any = true

			continue
		}
		fixed[i] = -1
		scope = append(scope, v)
	}
	if !any {
		return f.clone(), nil
	}

	// 2. Copy the matching slice; ascending order preserves row-major layout.
	table := make([]float64, 0, Size(scope))
	states := make([]int, len(f.scope))
	for _, p := range f.table {
		match := true
		for k, want := range fixed {
			if want >= 0 && states[k] != want {
				match = false

				break
			}
		}
		if match {
			table = append(table, p)
		}
		odometer(states, f.scope)
	}

	return &Factor{scope: scope, table: table}, nil
}

// Normalize rescales the factor to total mass 1. Returns ErrZeroMass when
// the mass is at or below CPDEpsilon - the degenerate case produced by
// zero-probability evidence. Normalize is idempotent within tolerance.
func (f *Factor) Normalize() (*Factor, error) {
	sum := f.Sum()
	if sum <= CPDEpsilon {
		return nil, fmt.Errorf("%w: mass %v", ErrZeroMass, sum)
	}

	table := make([]float64, len(f.table))
	for i, p := range f.table {
		table[i] = p / sum
	}

	return &Factor{scope: cloneScope(f.scope), table: table}, nil
}

// clone returns a deep copy (cpd flag included).
func (f *Factor) clone() *Factor {
	t := make([]float64, len(f.table))
	copy(t, f.table)

	return &Factor{scope: cloneScope(f.scope), table: t, cpd: f.cpd}
}

// strideInto maps each position of the enclosing scope to the row-major
// stride it contributes in sub, or 0 when the variable is absent from sub.
func strideInto(sub, scope []core.Variable) []int {
	// Row-major strides of sub: last variable has stride 1.
	subStride := make(map[string]int, len(sub))
	s := 1
	for i := len(sub) - 1; i >= 0; i-- {
		subStride[sub[i].Name] = s
		s *= sub[i].Card
	}

	out := make([]int, len(scope))
	for i, v := range scope {
		out[i] = subStride[v.Name] // zero when absent
	}

	return out
}
