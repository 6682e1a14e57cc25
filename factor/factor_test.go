package factor_test

import (
	"testing"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// epsTable is the tolerance for comparing table entries built from float
// arithmetic against hand-computed references.
const epsTable = 1e-12

// mustVar builds a discrete variable or fails the test.
func mustVar(t *testing.T, name string, card int) core.Variable {
	t.Helper()
	v, err := core.NewVariable(name, card)
	require.NoError(t, err)

	return v
}

// TestNew_Valid verifies construction and accessor copies.
func TestNew_Valid(t *testing.T) {
	a := mustVar(t, "A", 2)
	b := mustVar(t, "B", 3)

	f, err := factor.New([]core.Variable{a, b}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 6, f.Len())
	assert.False(t, f.IsIdentity())
	assert.False(t, f.IsCPD())

	// Accessors hand out copies, not aliases.
	vals := f.Values()
	vals[0] = 99
	again := f.Values()
	assert.Equal(t, 1.0, again[0], "Values must return an independent copy")
}

// TestNew_Errors walks the construction error paths.
func TestNew_Errors(t *testing.T) {
	a := mustVar(t, "A", 2)

	_, err := factor.New(nil, []float64{1})
	assert.ErrorIs(t, err, factor.ErrEmptyScope)

	_, err = factor.New([]core.Variable{a, a}, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, factor.ErrDuplicateVariable)

	_, err = factor.New([]core.Variable{a}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, factor.ErrTableSize)

	_, err = factor.New([]core.Variable{a}, []float64{1, -2})
	assert.ErrorIs(t, err, factor.ErrBadValue)
}

// TestNewCPD verifies per-row normalization checks and the Child accessor.
func TestNewCPD(t *testing.T) {
	a := mustVar(t, "A", 2)
	b := mustVar(t, "B", 2)

	cpd, err := factor.NewCPD(b, []core.Variable{a}, []float64{0.9, 0.1, 0.2, 0.8})
	require.NoError(t, err)
	assert.True(t, cpd.IsCPD())

	child, ok := cpd.Child()
	require.True(t, ok)
	assert.Equal(t, "B", child.Name)

	_, err = factor.NewCPD(b, []core.Variable{a}, []float64{0.9, 0.2, 0.2, 0.8})
	assert.ErrorIs(t, err, factor.ErrNotACPD, "row summing to 1.1 must be rejected")
}

// TestValue verifies lookup on full and superset assignments.
func TestValue(t *testing.T) {
	a := mustVar(t, "A", 2)
	b := mustVar(t, "B", 2)

	f, err := factor.New([]core.Variable{a, b}, []float64{0, 1, 2, 3})
	require.NoError(t, err)

	v, err := f.Value(core.NewAssignment().Set("A", 1).Set("B", 0))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	// Superset assignments are fine.
	v, err = f.Value(core.NewAssignment().Set("A", 0).Set("B", 1).Set("C", 5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// Missing scope variable errors.
	_, err = f.Value(core.NewAssignment().Set("A", 0))
	assert.ErrorIs(t, err, factor.ErrIncompleteAssignment)

	// Out-of-range index errors.
	_, err = f.Value(core.NewAssignment().Set("A", 2).Set("B", 0))
	assert.ErrorIs(t, err, core.ErrStateOutOfRange)
}

// TestProduct_KollerFriedman reproduces the worked product of K&F Figure 4.3.
func TestProduct_KollerFriedman(t *testing.T) {
	a := mustVar(t, "A", 3)
	b := mustVar(t, "B", 2)
	c := mustVar(t, "C", 2)

	phi1, err := factor.New([]core.Variable{a, b}, []float64{0.5, 0.8, 0.1, 0, 0.3, 0.9})
	require.NoError(t, err)
	phi2, err := factor.New([]core.Variable{b, c}, []float64{0.5, 0.7, 0.1, 0.2})
	require.NoError(t, err)

	prod := phi1.Product(phi2)
	require.Equal(t, 12, prod.Len())

	expected := []float64{0.25, 0.35, 0.08, 0.16, 0.05, 0.07, 0, 0, 0.15, 0.21, 0.09, 0.18}
	got := prod.Values()
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], epsTable, "entry %d", i)
	}
}

// TestProduct_Identity verifies the identity factor is absorbed on both sides.
func TestProduct_Identity(t *testing.T) {
	a := mustVar(t, "A", 2)

	f, err := factor.New([]core.Variable{a}, []float64{0.4, 0.6})
	require.NoError(t, err)

	left := factor.Identity().Product(f)
	right := f.Product(factor.Identity())

	assert.Equal(t, f.Values(), left.Values())
	assert.Equal(t, f.Values(), right.Values())
}

// TestProduct_DisjointScopes verifies the outer-product case.
func TestProduct_DisjointScopes(t *testing.T) {
	a := mustVar(t, "A", 2)
	b := mustVar(t, "B", 2)

	fa, err := factor.New([]core.Variable{a}, []float64{0.7, 0.3})
	require.NoError(t, err)
	fb, err := factor.New([]core.Variable{b}, []float64{0.1, 0.9})
	require.NoError(t, err)

	prod := fa.Product(fb)
	expected := []float64{0.07, 0.63, 0.03, 0.27}
	got := prod.Values()
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], epsTable, "entry %d", i)
	}
}

// TestDivide_KollerFriedman reproduces the worked division of K&F 10.3.1,
// including the 0/0 := 0 convention.
func TestDivide_KollerFriedman(t *testing.T) {
	a := mustVar(t, "A", 3)
	b := mustVar(t, "B", 2)

	phi1, err := factor.New([]core.Variable{a, b}, []float64{0.5, 0.2, 0, 0, 0.3, 0.45})
	require.NoError(t, err)
	phi2, err := factor.New([]core.Variable{a}, []float64{0.8, 0, 0.6})
	require.NoError(t, err)

	q, err := phi1.Divide(phi2)
	require.NoError(t, err)

	expected := []float64{0.625, 0.25, 0, 0, 0.5, 0.75}
	got := q.Values()
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], epsTable, "entry %d", i)
	}
}

// TestDivide_Errors verifies the subset-scope and x/0 guards.
func TestDivide_Errors(t *testing.T) {
	a := mustVar(t, "A", 2)
	b := mustVar(t, "B", 2)

	fa, err := factor.New([]core.Variable{a}, []float64{0.5, 0.5})
	require.NoError(t, err)
	fb, err := factor.New([]core.Variable{b}, []float64{0.5, 0.5})
	require.NoError(t, err)

	_, err = fa.Divide(fb)
	assert.ErrorIs(t, err, factor.ErrScopeNotSubset)

	zero, err := factor.New([]core.Variable{a}, []float64{0, 1})
	require.NoError(t, err)
	_, err = fa.Divide(zero)
	assert.ErrorIs(t, err, factor.ErrDivideByZero, "0.5/0 must error")
}

// TestMarginalize_KollerFriedman sums B out of the Figure 4.3 product.
func TestMarginalize_KollerFriedman(t *testing.T) {
	a := mustVar(t, "A", 3)
	b := mustVar(t, "B", 2)
	c := mustVar(t, "C", 2)

	table := []float64{0.25, 0.35, 0.08, 0.16, 0.05, 0.07, 0, 0, 0.15, 0.21, 0.09, 0.18}
	phi, err := factor.New([]core.Variable{a, b, c}, table)
	require.NoError(t, err)

	m, err := phi.Marginalize("B")
	require.NoError(t, err)
	require.Len(t, m.Scope(), 2)
	assert.Equal(t, "A", m.Scope()[0].Name)
	assert.Equal(t, "C", m.Scope()[1].Name)

	expected := []float64{0.33, 0.51, 0.05, 0.07, 0.24, 0.39}
	got := m.Values()
	for i := range expected {
		assert.InDelta(t, expected[i], got[i], epsTable, "entry %d", i)
	}

	_, err = phi.Marginalize("Z")
	assert.ErrorIs(t, err, factor.ErrNotInScope)
}

// TestMarginalize_ToConstant verifies the empty-scope constant carries the
// total mass.
func TestMarginalize_ToConstant(t *testing.T) {
	a := mustVar(t, "A", 3)

	f, err := factor.New([]core.Variable{a}, []float64{0.2, 0.3, 0.5})
	require.NoError(t, err)

	m, err := f.Marginalize("A")
	require.NoError(t, err)
	assert.True(t, m.IsIdentity())
	assert.InDelta(t, 1.0, m.Sum(), epsTable)
}

// TestReduce slices the Figure 4.3 product by single and double evidence.
func TestReduce(t *testing.T) {
	a := mustVar(t, "A", 3)
	b := mustVar(t, "B", 2)
	c := mustVar(t, "C", 2)

	table := []float64{0.25, 0.35, 0.08, 0.16, 0.05, 0.07, 0, 0, 0.15, 0.21, 0.09, 0.18}
	phi, err := factor.New([]core.Variable{a, b, c}, table)
	require.NoError(t, err)

	// Fix C=0.
	r, err := phi.Reduce(core.NewAssignment().Set("C", 0))
	require.NoError(t, err)
	require.Len(t, r.Scope(), 2)
	assert.Equal(t, []float64{0.25, 0.08, 0.05, 0, 0.15, 0.09}, r.Values())

	// Fix C=0 and A=2.
	r, err = phi.Reduce(core.NewAssignment().Set("C", 0).Set("A", 2))
	require.NoError(t, err)
	require.Len(t, r.Scope(), 1)
	assert.Equal(t, []float64{0.15, 0.09}, r.Values())

	// Evidence outside the scope is ignored.
	r, err = phi.Reduce(core.NewAssignment().Set("Z", 1))
	require.NoError(t, err)
	assert.Equal(t, phi.Values(), r.Values())

	// Full reduction keeps the selected entry as a constant.
	r, err = phi.Reduce(core.NewAssignment().Set("A", 0).Set("B", 1).Set("C", 1))
	require.NoError(t, err)
	assert.True(t, r.IsIdentity())
	assert.InDelta(t, 0.16, r.Sum(), epsTable)

	// Invalid observed index errors.
	_, err = phi.Reduce(core.NewAssignment().Set("C", 5))
	assert.ErrorIs(t, err, core.ErrStateOutOfRange)
}

// TestNormalize verifies rescaling, idempotence, and the zero-mass guard.
func TestNormalize(t *testing.T) {
	a := mustVar(t, "A", 2)

	f, err := factor.New([]core.Variable{a}, []float64{2, 6})
	require.NoError(t, err)

	n, err := f.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, n.Values()[0], epsTable)
	assert.InDelta(t, 0.75, n.Values()[1], epsTable)

	// Idempotence: normalizing twice changes nothing.
	n2, err := n.Normalize()
	require.NoError(t, err)
	for i, p := range n.Values() {
		assert.InDelta(t, p, n2.Values()[i], epsTable)
	}

	zero, err := factor.New([]core.Variable{a}, []float64{0, 0})
	require.NoError(t, err)
	_, err = zero.Normalize()
	assert.ErrorIs(t, err, factor.ErrZeroMass)
}

// TestEach verifies enumeration order matches the row-major table layout.
func TestEach(t *testing.T) {
	a := mustVar(t, "A", 2)
	b := mustVar(t, "B", 2)

	f, err := factor.New([]core.Variable{a, b}, []float64{0, 1, 2, 3})
	require.NoError(t, err)

	var seen []float64
	f.Each(func(asn core.Assignment, p float64) {
		sa, _ := asn.Get("A")
		sb, _ := asn.Get("B")
		assert.Equal(t, float64(sa*2+sb), p)
		seen = append(seen, p)
	})
	assert.Equal(t, []float64{0, 1, 2, 3}, seen)
}

// TestOffsetAndSize verifies the shared index helpers.
func TestOffsetAndSize(t *testing.T) {
	a := mustVar(t, "A", 3)
	b := mustVar(t, "B", 2)
	scope := []core.Variable{a, b}

	assert.Equal(t, 6, factor.Size(scope))
	assert.Equal(t, 1, factor.Size(nil))

	idx, err := factor.Offset(scope, core.NewAssignment().Set("A", 2).Set("B", 1))
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	_, err = factor.Offset(scope, core.NewAssignment().Set("A", 2))
	assert.ErrorIs(t, err, factor.ErrIncompleteAssignment)
}
