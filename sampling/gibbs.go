package sampling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/network"
)

// Chain is an explicit Gibbs-sampler state: the current full assignment,
// the sweep counter, and the per-variable Markov-blanket factor lists. A
// Chain is the one stateful object of this package - Step mutates it - and
// it is not safe for concurrent use; run parallel chains with one Chain and
// one rng each.
type Chain struct {
	net      *network.Network
	hidden   []core.Variable             // resampled each sweep, topological order
	blankets map[string][]*factor.Factor // CPDs whose scope contains the variable
	current  core.Assignment
	sweeps   int
	rng      *rand.Rand
}

// NewChain builds a Gibbs chain with evidence clamped for its whole
// lifetime. The initial state of the hidden variables is drawn with one
// likelihood-weighted pass, which always starts the chain inside the
// evidence's support. A nil rng uses a deterministic default stream.
func NewChain(net *network.Network, evidence core.Assignment, rng *rand.Rand) (*Chain, error) {
	if err := validateQuery(net, nil, evidence); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	// 1. Initial state: evidence clamped, hidden variables sampled from
	// their CPDs (the weight of the pass is irrelevant here).
	initial, _, err := weightedParticle(net, evidence, rng)
	if err != nil {
		return nil, err
	}

	// 2. Hidden variables and their Markov-blanket factor lists: the
	// variable's own CPD plus one CPD per child. Only these factors involve
	// the variable, so their product is its full conditional up to a
	// constant.
	var hidden []core.Variable
	blankets := make(map[string][]*factor.Factor)
	for _, v := range net.TopologicalOrder() {
		if evidence.Has(v.Name) {
			continue
		}
		hidden = append(hidden, v)

		own, err := net.CPD(v.Name)
		if err != nil {
			return nil, err
		}
		fs := []*factor.Factor{own}
		children, err := net.Children(v.Name)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			cpd, err := net.CPD(c.Name)
			if err != nil {
				return nil, err
			}
			fs = append(fs, cpd)
		}
		blankets[v.Name] = fs
	}

	return &Chain{
		net:      net,
		hidden:   hidden,
		blankets: blankets,
		current:  initial,
		rng:      rng,
	}, nil
}

// Step performs one full sweep: every hidden variable is resampled from its
// full conditional given the current states of all other variables.
func (c *Chain) Step() error {
	for _, v := range c.hidden {
		weights := make([]float64, v.Card)
		for s := 0; s < v.Card; s++ {
			c.current.Set(v.Name, s)
			w := 1.0
			for _, f := range c.blankets[v.Name] {
				p, err := f.Value(c.current)
				if err != nil {
					return err
				}
				w *= p
			}
			weights[s] = w
		}

		state := categorical(c.rng, weights)
		if state < 0 {
			return fmt.Errorf("%w: %q at sweep %d", ErrDegenerateConditional, v.Name, c.sweeps)
		}
		c.current.Set(v.Name, state)
	}
	c.sweeps++

	return nil
}

// Current returns a copy of the chain's full assignment.
func (c *Chain) Current() core.Assignment {
	return c.current.Clone()
}

// Sweeps returns the number of completed sweeps, burn-in included.
func (c *Chain) Sweeps() int {
	return c.sweeps
}

// InferGibbs estimates P(targets | evidence) from a Gibbs chain: burnIn
// sweeps are discarded, then n states are kept, thinning-1 sweeps apart
// (thinning <= 1 keeps every sweep). The estimate is the empirical state
// frequency over the kept samples.
//
// MCMC samples are correlated; EffectiveSamples reports the raw kept count
// and the burn-in/thinning budget is the caller's convergence control.
// A nil rng uses a deterministic default stream.
func InferGibbs(net *network.Network, targets []string, evidence core.Assignment, burnIn, n, thinning int, rng *rand.Rand) (Result, error) {
	// 1. Eager validation.
	if err := validateQuery(net, targets, evidence); err != nil {
		return Result{}, err
	}
	scope, err := targetScope(net, targets)
	if err != nil {
		return Result{}, err
	}
	if n <= 0 || burnIn < 0 || thinning < 0 {
		return Result{}, fmt.Errorf("%w: n=%d burnIn=%d thinning=%d", ErrBadSampleCount, n, burnIn, thinning)
	}
	if thinning < 1 {
		thinning = 1
	}

	// 2. Burn the chain in.
	chain, err := NewChain(net, evidence, rng)
	if err != nil {
		return Result{}, err
	}
	for i := 0; i < burnIn; i++ {
		if err = chain.Step(); err != nil {
			return Result{}, err
		}
	}

	// 3. Collect n states, thinning sweeps apart.
	table := make([]float64, factor.Size(scope))
	for i := 0; i < n; i++ {
		for k := 0; k < thinning; k++ {
			if err = chain.Step(); err != nil {
				return Result{}, err
			}
		}
		idx, err := factor.Offset(scope, chain.current)
		if err != nil {
			return Result{}, err
		}
		table[idx]++
	}

	// 4. Frequencies to distribution.
	f, err := factor.New(scope, table)
	if err != nil {
		return Result{}, err
	}
	dist, err := f.Normalize()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Dist:             dist,
		Samples:          n,
		EffectiveSamples: float64(n),
		LowConfidence:    float64(n) < MinEffectiveSamples,
	}, nil
}
