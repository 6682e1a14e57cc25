package network_test

import (
	"testing"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsProb = 1e-12

// studentNet builds the Koller & Friedman student network:
// D -> G <- I, I -> S, G -> L.
func studentNet(t *testing.T) *network.Network {
	t.Helper()

	d, _ := core.NewBinary("D")
	i, _ := core.NewBinary("I")
	g, _ := core.NewVariable("G", 3)
	s, _ := core.NewBinary("S")
	l, _ := core.NewBinary("L")

	cpdD, err := factor.NewCPD(d, nil, []float64{0.6, 0.4})
	require.NoError(t, err)
	cpdI, err := factor.NewCPD(i, nil, []float64{0.7, 0.3})
	require.NoError(t, err)
	cpdG, err := factor.NewCPD(g, []core.Variable{i, d}, []float64{
		0.3, 0.4, 0.3,
		0.05, 0.25, 0.7,
		0.9, 0.08, 0.02,
		0.5, 0.3, 0.2,
	})
	require.NoError(t, err)
	cpdS, err := factor.NewCPD(s, []core.Variable{i}, []float64{0.95, 0.05, 0.2, 0.8})
	require.NoError(t, err)
	cpdL, err := factor.NewCPD(l, []core.Variable{g}, []float64{0.1, 0.9, 0.4, 0.6, 0.99, 0.01})
	require.NoError(t, err)

	net, err := network.NewBuilder().
		Add(d, nil, cpdD).
		Add(i, nil, cpdI).
		Add(g, []string{"I", "D"}, cpdG).
		Add(s, []string{"I"}, cpdS).
		Add(l, []string{"G"}, cpdL).
		Build()
	require.NoError(t, err)

	return net
}

// TestBuild_Student verifies structure accessors on the student network.
func TestBuild_Student(t *testing.T) {
	net := studentNet(t)

	assert.Equal(t, 5, net.Len())
	assert.True(t, net.Contains("G"))
	assert.False(t, net.Contains("Z"))

	g, err := net.Variable("G")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Card)

	parents, err := net.Parents("G")
	require.NoError(t, err)
	require.Len(t, parents, 2)
	assert.Equal(t, "I", parents[0].Name)
	assert.Equal(t, "D", parents[1].Name)

	children, err := net.Children("I")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "G", children[0].Name)
	assert.Equal(t, "S", children[1].Name)

	_, err = net.Variable("Z")
	assert.ErrorIs(t, err, network.ErrUnknownVariable)
}

// TestTopologicalOrder verifies parents precede children.
func TestTopologicalOrder(t *testing.T) {
	net := studentNet(t)

	pos := make(map[string]int)
	for i, v := range net.TopologicalOrder() {
		pos[v.Name] = i
	}
	require.Len(t, pos, 5)

	assert.Less(t, pos["D"], pos["G"])
	assert.Less(t, pos["I"], pos["G"])
	assert.Less(t, pos["I"], pos["S"])
	assert.Less(t, pos["G"], pos["L"])
}

// TestMarkovBlanket verifies parents, children, and co-parents are included.
func TestMarkovBlanket(t *testing.T) {
	net := studentNet(t)

	mb, err := net.MarkovBlanket("I")
	require.NoError(t, err)

	names := make([]string, len(mb))
	for i, v := range mb {
		names[i] = v.Name
	}
	// Parents: none. Children: G, S. Co-parent of G: D.
	assert.ElementsMatch(t, []string{"D", "G", "S"}, names)

	mb, err = net.MarkovBlanket("L")
	require.NoError(t, err)
	require.Len(t, mb, 1)
	assert.Equal(t, "G", mb[0].Name)
}

// TestProbability checks the chain rule on the two-node intelligence model:
// P(I) = [0.7, 0.3], P(S=1|I=0) = 0.05, P(S=1|I=1) = 0.8.
func TestProbability(t *testing.T) {
	i, _ := core.NewBinary("I")
	s, _ := core.NewBinary("S")

	cpdI, err := factor.NewCPD(i, nil, []float64{0.7, 0.3})
	require.NoError(t, err)
	cpdS, err := factor.NewCPD(s, []core.Variable{i}, []float64{0.95, 0.05, 0.2, 0.8})
	require.NoError(t, err)

	net, err := network.NewBuilder().
		Add(i, nil, cpdI).
		Add(s, []string{"I"}, cpdS).
		Build()
	require.NoError(t, err)

	cases := []struct {
		i, s int
		want float64
	}{
		{0, 0, 0.7 * 0.95},
		{0, 1, 0.7 * 0.05},
		{1, 0, 0.3 * 0.2},
		{1, 1, 0.3 * 0.8},
	}
	for _, c := range cases {
		p, err := net.Probability(core.NewAssignment().Set("I", c.i).Set("S", c.s))
		require.NoError(t, err)
		assert.InDelta(t, c.want, p, epsProb, "I=%d S=%d", c.i, c.s)
	}

	// Partial assignments are rejected.
	_, err = net.Probability(core.NewAssignment().Set("I", 1))
	assert.ErrorIs(t, err, factor.ErrIncompleteAssignment)
}

// TestBuild_Errors walks the structural validation paths.
func TestBuild_Errors(t *testing.T) {
	a, _ := core.NewBinary("A")
	b, _ := core.NewBinary("B")

	priorA, err := factor.NewCPD(a, nil, []float64{0.5, 0.5})
	require.NoError(t, err)
	priorB, err := factor.NewCPD(b, nil, []float64{0.5, 0.5})
	require.NoError(t, err)
	condAB, err := factor.NewCPD(b, []core.Variable{a}, []float64{0.9, 0.1, 0.2, 0.8})
	require.NoError(t, err)
	condBA, err := factor.NewCPD(a, []core.Variable{b}, []float64{0.9, 0.1, 0.2, 0.8})
	require.NoError(t, err)

	// Duplicate name.
	_, err = network.NewBuilder().Add(a, nil, priorA).Add(a, nil, priorA).Build()
	assert.ErrorIs(t, err, network.ErrDuplicateVariable)

	// Unknown parent.
	_, err = network.NewBuilder().Add(b, []string{"A"}, condAB).Build()
	assert.ErrorIs(t, err, network.ErrUnknownParent)

	// Missing CPD.
	_, err = network.NewBuilder().Add(a, nil, nil).Build()
	assert.ErrorIs(t, err, network.ErrMissingCPD)

	// CPD conditions the wrong child.
	_, err = network.NewBuilder().Add(a, nil, priorB).Build()
	assert.ErrorIs(t, err, network.ErrCPDMismatch)

	// CPD parent scope does not match the declared parents.
	_, err = network.NewBuilder().Add(a, nil, priorA).Add(b, nil, condAB).Build()
	assert.ErrorIs(t, err, network.ErrCPDMismatch)

	// Non-CPD factor for a node.
	flat, err := factor.New([]core.Variable{a}, []float64{2, 2})
	require.NoError(t, err)
	_, err = network.NewBuilder().Add(a, nil, flat).Build()
	assert.ErrorIs(t, err, network.ErrCPDMismatch)

	// Cycle: A -> B -> A.
	_, err = network.NewBuilder().
		Add(a, []string{"B"}, condBA).
		Add(b, []string{"A"}, condAB).
		Build()
	assert.ErrorIs(t, err, network.ErrCycleDetected)
}
