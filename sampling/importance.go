package sampling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/network"
)

// InferImportance estimates P(targets | evidence) from n likelihood-weighted
// particles (K&F Algorithm 12.2). Evidence variables are clamped to their
// observed states and each particle's weight is the product of the clamped
// states' probabilities given the particle's sampled parents; the estimate
// is the weight-normalized empirical distribution over the targets.
//
// The estimator is consistent but its variance grows as the evidence's
// prior probability shrinks; check Result.EffectiveSamples.
// A nil rng uses a deterministic default stream.
func InferImportance(net *network.Network, targets []string, evidence core.Assignment, n int, rng *rand.Rand) (Result, error) {
	// 1. Eager validation.
	if err := validateQuery(net, targets, evidence); err != nil {
		return Result{}, err
	}
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: n=%d", ErrBadSampleCount, n)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	scope, err := targetScope(net, targets)
	if err != nil {
		return Result{}, err
	}

	// 2. Accumulate particle weights per target configuration.
	table := make([]float64, factor.Size(scope))
	sumW, sumW2 := 0.0, 0.0
	for i := 0; i < n; i++ {
		particle, w, err := weightedParticle(net, evidence, rng)
		if err != nil {
			return Result{}, err
		}
		idx, err := factor.Offset(scope, particle)
		if err != nil {
			return Result{}, err
		}
		table[idx] += w
		sumW += w
		sumW2 += w * w
	}
	if sumW <= 0 {
		return Result{}, ErrZeroWeight
	}

	// 3. Normalize into the estimated posterior.
	f, err := factor.New(scope, table)
	if err != nil {
		return Result{}, err
	}
	dist, err := f.Normalize()
	if err != nil {
		return Result{}, err
	}

	ess := sumW * sumW / sumW2

	return Result{
		Dist:             dist,
		Samples:          n,
		EffectiveSamples: ess,
		LowConfidence:    ess < MinEffectiveSamples,
	}, nil
}

// weightedParticle draws one particle with evidence clamped and returns it
// with its likelihood weight.
func weightedParticle(net *network.Network, evidence core.Assignment, rng *rand.Rand) (core.Assignment, float64, error) {
	a := core.NewAssignment()
	w := 1.0
	for _, v := range net.TopologicalOrder() {
		if state, observed := evidence.Get(v.Name); observed {
			a.Set(v.Name, state)
			cpd, err := net.CPD(v.Name)
			if err != nil {
				return nil, 0, err
			}
			p, err := cpd.Value(a)
			if err != nil {
				return nil, 0, err
			}
			w *= p

			continue
		}

		state, err := sampleNode(net, v, a, rng)
		if err != nil {
			return nil, 0, err
		}
		a.Set(v.Name, state)
	}

	return a, w, nil
}

// validateQuery rejects malformed targets/evidence. targets may be empty
// for callers that only clamp evidence (the Gibbs chain).
func validateQuery(net *network.Network, targets []string, evidence core.Assignment) error {
	seen := make(map[string]struct{}, len(targets))
	for _, name := range targets {
		if !net.Contains(name) {
			return fmt.Errorf("%w: unknown target %q", ErrInvalidQuery, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate target %q", ErrInvalidQuery, name)
		}
		seen[name] = struct{}{}
		if evidence.Has(name) {
			return fmt.Errorf("%w: %q is both target and evidence", ErrInvalidQuery, name)
		}
	}
	for name, state := range evidence {
		v, err := net.Variable(name)
		if err != nil {
			return fmt.Errorf("%w: unknown evidence variable %q", ErrInvalidQuery, name)
		}
		if !v.Valid(state) {
			return fmt.Errorf("%w: state %d out of range for %q (card %d)", ErrInvalidQuery, state, name, v.Card)
		}
	}

	return nil
}

// targetScope resolves target names to variables, preserving order, and
// rejects an empty target list for the estimators.
func targetScope(net *network.Network, targets []string) ([]core.Variable, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no target variables", ErrInvalidQuery)
	}

	scope := make([]core.Variable, len(targets))
	for i, name := range targets {
		v, err := net.Variable(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		scope[i] = v
	}

	return scope, nil
}
