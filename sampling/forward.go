package sampling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/network"
)

// Forward draws one complete assignment by ancestral sampling: every
// variable is sampled from its CPD conditioned on its (already sampled)
// parents, in topological order. Calls are independent; only rng advances.
// A nil rng uses a deterministic default stream.
func Forward(net *network.Network, rng *rand.Rand) (core.Assignment, error) {
	if rng == nil {
		rng = NewRand(0)
	}

	a := core.NewAssignment()
	for _, v := range net.TopologicalOrder() {
		state, err := sampleNode(net, v, a, rng)
		if err != nil {
			return nil, err
		}
		a.Set(v.Name, state)
	}

	return a, nil
}

// Dataset draws n independent ancestral samples - the synthetic-data
// companion of the estimation package.
func Dataset(net *network.Network, n int, rng *rand.Rand) ([]core.Assignment, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSampleCount, n)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	out := make([]core.Assignment, n)
	for i := range out {
		a, err := Forward(net, rng)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}

	return out, nil
}

// sampleNode draws a state for v from its CPD row given the parent states
// already present in a.
func sampleNode(net *network.Network, v core.Variable, a core.Assignment, rng *rand.Rand) (int, error) {
	cpd, err := net.CPD(v.Name)
	if err != nil {
		return 0, err
	}

	row := make([]float64, v.Card)
	for s := 0; s < v.Card; s++ {
		a.Set(v.Name, s)
		row[s], err = cpd.Value(a)
		if err != nil {
			a.Unset(v.Name)

			return 0, err
		}
	}
	a.Unset(v.Name)

	state := categorical(rng, row)
	if state < 0 {
		return 0, fmt.Errorf("%w: CPD row of %q", ErrDegenerateConditional, v.Name)
	}

	return state, nil
}
