package elimination

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/network"
)

// Option configures an Infer call.
type Option func(*options)

// options holds the optional knobs of Infer.
type options struct {
	order []string // explicit elimination order; nil = min-fill heuristic
}

// WithOrder overrides the min-fill heuristic with an explicit elimination
// order. The list must be a permutation of the hidden variables (all nodes
// that are neither targets nor evidence); Infer fails with ErrBadOrder
// otherwise.
func WithOrder(order ...string) Option {
	return func(o *options) {
		o.order = order
	}
}

// Infer computes the exact posterior P(targets | evidence) by variable
// elimination. The result is a normalized factor whose scope is exactly the
// target variables, in the order given.
func Infer(net *network.Network, targets []string, evidence core.Assignment, opts ...Option) (*factor.Factor, error) {
	// 1. Apply options.
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Eager query validation - no partial computation on bad input.
	if err := validateQuery(net, targets, evidence); err != nil {
		return nil, err
	}

	// 3. Reduce every CPD by the evidence.
	factors, err := reducedFactors(net, evidence)
	if err != nil {
		return nil, err
	}

	// 4. Decide the elimination order over the hidden variables.
	hidden := hiddenVariables(net, targets, evidence)
	order := o.order
	if order == nil {
		order = minFillOrder(factors, hidden)
	} else if err = checkOrder(order, hidden); err != nil {
		return nil, err
	}

	// 5. Sum-product eliminate loop.
	for _, name := range order {
		factors = eliminate(factors, name)
	}

	// 6. Multiply the survivors and normalize into the posterior.
	result := factor.Identity()
	for _, f := range factors {
		result = result.Product(f)
	}
	result, err = result.Normalize()
	if err != nil {
		if errors.Is(err, factor.ErrZeroMass) {
			return nil, fmt.Errorf("%w: %v", ErrZeroEvidence, err)
		}

		return nil, err
	}

	// 7. Canonicalize the scope to the requested target order.
	return reorder(result, net, targets)
}

// Order computes the min-fill elimination order Infer would use for the
// query, exposed for inspection and testing.
func Order(net *network.Network, targets []string, evidence core.Assignment) ([]string, error) {
	if err := validateQuery(net, targets, evidence); err != nil {
		return nil, err
	}
	factors, err := reducedFactors(net, evidence)
	if err != nil {
		return nil, err
	}

	return minFillOrder(factors, hiddenVariables(net, targets, evidence)), nil
}

// validateQuery rejects malformed targets/evidence before any computation.
func validateQuery(net *network.Network, targets []string, evidence core.Assignment) error {
	if len(targets) == 0 {
		return fmt.Errorf("%w: no target variables", ErrInvalidQuery)
	}
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

// reducedFactors returns every CPD of the network reduced by the evidence.
// Fully reduced factors survive as empty-scope constants; they carry the
// evidence likelihood that makes zero-probability evidence detectable.
func reducedFactors(net *network.Network, evidence core.Assignment) ([]*factor.Factor, error) {
	vars := net.TopologicalOrder()
	out := make([]*factor.Factor, 0, len(vars))
	for _, v := range vars {
		cpd, err := net.CPD(v.Name)
		if err != nil {
			return nil, err
		}
		reduced, err := cpd.Reduce(evidence)
		if err != nil {
			return nil, err
		}
		out = append(out, reduced)
	}

	return out, nil
}

// hiddenVariables lists the nodes that are neither targets nor evidence,
// in topological order.
func hiddenVariables(net *network.Network, targets []string, evidence core.Assignment) []string {
	keep := make(map[string]struct{}, len(targets))
	for _, name := range targets {
		keep[name] = struct{}{}
	}

	var hidden []string
	for _, v := range net.TopologicalOrder() {
		if _, t := keep[v.Name]; t || evidence.Has(v.Name) {
			continue
		}
		hidden = append(hidden, v.Name)
	}

	return hidden
}

// checkOrder verifies an override order is a permutation of hidden.
func checkOrder(order, hidden []string) error {
	if len(order) != len(hidden) {
		return fmt.Errorf("%w: got %d names, need %d", ErrBadOrder, len(order), len(hidden))
	}
	want := make(map[string]struct{}, len(hidden))
	for _, name := range hidden {
		want[name] = struct{}{}
	}
	for _, name := range order {
		if _, ok := want[name]; !ok {
			return fmt.Errorf("%w: %q is not hidden", ErrBadOrder, name)
		}
		delete(want, name)
	}

	return nil
}

// eliminate multiplies every factor whose scope contains name into one,
// sums name out, and returns the new working set. Factors not mentioning
// name pass through untouched.
func eliminate(factors []*factor.Factor, name string) []*factor.Factor {
	rest := make([]*factor.Factor, 0, len(factors))
	joined := factor.Identity()
	hit := false
	for _, f := range factors {
		if f.InScope(name) {
			joined = joined.Product(f)
			hit = true

			continue
		}
		rest = append(rest, f)
	}
	if !hit {
		// Variable already absent from every factor (barren after reduction).
		return rest
	}

	// Marginalize cannot fail here: name is in the joined scope.
	summed, _ := joined.Marginalize(name)

	return append(rest, summed)
}

// minFillOrder orders the hidden variables by the min-fill heuristic over
// the interaction graph of the current factor scopes: two variables are
// adjacent when they co-occur in some factor. At each step the candidate
// whose elimination introduces the fewest new adjacencies is chosen, ties
// broken lexicographically; its neighborhood is then clique-connected and
// the variable removed, mirroring the factor the eliminate loop will create.
func minFillOrder(factors []*factor.Factor, hidden []string) []string {
	// 1. Interaction graph over every variable still present in a factor.
	adj := make(map[string]map[string]struct{})
	touch := func(name string) map[string]struct{} {
		if adj[name] == nil {
			adj[name] = make(map[string]struct{})
		}

		return adj[name]
	}
	for _, f := range factors {
		scope := f.Scope()
		for i := 0; i < len(scope); i++ {
			touch(scope[i].Name)
			for j := i + 1; j < len(scope); j++ {
				touch(scope[i].Name)[scope[j].Name] = struct{}{}
				touch(scope[j].Name)[scope[i].Name] = struct{}{}
			}
		}
	}

	candidates := make([]string, len(hidden))
	copy(candidates, hidden)
	sort.Strings(candidates)

	order := make([]string, 0, len(candidates))
	remaining := make(map[string]struct{}, len(candidates))
	for _, name := range candidates {
		remaining[name] = struct{}{}
	}

	for len(order) < len(candidates) {
		best, bestFill := "", -1
		for _, name := range candidates {
			if _, live := remaining[name]; !live {
				continue
			}
			fill := fillCount(adj, name)
			if bestFill < 0 || fill < bestFill {
				best, bestFill = name, fill
			}
			// Ties keep the earlier (lexicographically smaller) candidate.
		}

		order = append(order, best)
		delete(remaining, best)
		connectNeighbors(adj, best)
	}

	return order
}

// fillCount counts the neighbor pairs of name not yet adjacent - the edges
// its elimination would add.
func fillCount(adj map[string]map[string]struct{}, name string) int {
	neighbors := make([]string, 0, len(adj[name]))
	for n := range adj[name] {
		neighbors = append(neighbors, n)
	}

	fill := 0
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			if _, ok := adj[neighbors[i]][neighbors[j]]; !ok {
				fill++
			}
		}
	}

	return fill
}

// connectNeighbors clique-connects name's neighborhood and removes name
// from the interaction graph.
func connectNeighbors(adj map[string]map[string]struct{}, name string) {
	neighbors := make([]string, 0, len(adj[name]))
	for n := range adj[name] {
		neighbors = append(neighbors, n)
	}
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			adj[neighbors[i]][neighbors[j]] = struct{}{}
			adj[neighbors[j]][neighbors[i]] = struct{}{}
		}
	}
	for _, n := range neighbors {
		delete(adj[n], name)
	}
	delete(adj, name)
}

// reorder rebuilds f with its scope permuted to the requested target order.
func reorder(f *factor.Factor, net *network.Network, targets []string) (*factor.Factor, error) {
	scope := make([]core.Variable, len(targets))
	for i, name := range targets {
		v, err := net.Variable(name)
		if err != nil {
			return nil, err
		}
		scope[i] = v
	}

	table := make([]float64, factor.Size(scope))
	var walkErr error
	f.Each(func(a core.Assignment, p float64) {
		idx, err := factor.Offset(scope, a)
		if err != nil {
			walkErr = err

			return
		}
		table[idx] = p
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return factor.New(scope, table)
}
