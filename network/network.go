package network

import (
	"fmt"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
)

// Network is an immutable Bayesian network: an arena of variables, parent
// and child adjacency by index, one CPD per node, and a cached topological
// order. Build one with Builder; a built Network is never mutated and may be
// read concurrently.
type Network struct {
	vars     []core.Variable   // arena, indexed by node id
	index    map[string]int    // name -> node id
	parents  [][]int           // parent ids per node
	children [][]int           // child ids per node
	cpds     []*factor.Factor  // P(node | parents) per node
	topo     []int             // node ids, parents before children
}

// Len returns the number of nodes.
func (n *Network) Len() int {
	return len(n.vars)
}

// Contains reports whether name is a node of the network.
func (n *Network) Contains(name string) bool {
	_, ok := n.index[name]

	return ok
}

// Variable resolves a node by name.
func (n *Network) Variable(name string) (core.Variable, error) {
	id, ok := n.index[name]
	if !ok {
		return core.Variable{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return n.vars[id], nil
}

// Variables returns all nodes in insertion order.
func (n *Network) Variables() []core.Variable {
	out := make([]core.Variable, len(n.vars))
	copy(out, n.vars)

	return out
}

// CPD returns the conditional distribution owned by the named node.
func (n *Network) CPD(name string) (*factor.Factor, error) {
	id, ok := n.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return n.cpds[id], nil
}

// Parents returns the named node's parents in declaration order.
func (n *Network) Parents(name string) ([]core.Variable, error) {
	id, ok := n.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return n.resolve(n.parents[id]), nil
}

// Children returns the named node's children in insertion order.
func (n *Network) Children(name string) ([]core.Variable, error) {
	id, ok := n.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return n.resolve(n.children[id]), nil
}

// TopologicalOrder returns all nodes with every parent before its children.
// The order is computed once at Build and shared by every caller.
func (n *Network) TopologicalOrder() []core.Variable {
	return n.resolve(n.topo)
}

// MarkovBlanket returns the named node's parents, children, and children's
// other parents - the minimal set that renders the node conditionally
// independent of the rest of the network.
func (n *Network) MarkovBlanket(name string) ([]core.Variable, error) {
	id, ok := n.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	in := make(map[int]struct{})
	for _, p := range n.parents[id] {
		in[p] = struct{}{}
	}
	for _, c := range n.children[id] {
		in[c] = struct{}{}
		for _, cp := range n.parents[c] {
			if cp != id {
				in[cp] = struct{}{}
			}
		}
	}

	// Emit in arena order for determinism.
	out := make([]core.Variable, 0, len(in))
	for i, v := range n.vars {
		if _, ok := in[i]; ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Probability evaluates the joint probability of a full assignment by the
// chain rule: the product of every node's CPD at the assignment. The
// assignment must cover all nodes; factor.ErrIncompleteAssignment is
// returned otherwise.
func (n *Network) Probability(a core.Assignment) (float64, error) {
	p := 1.0
	for _, id := range n.topo {
		v, err := n.cpds[id].Value(a)
		if err != nil {
			return 0, err
		}
		p *= v
	}

	return p, nil
}

// resolve maps node ids to their variables.
func (n *Network) resolve(ids []int) []core.Variable {
	out := make([]core.Variable, len(ids))
	for i, id := range ids {
		out[i] = n.vars[id]
	}

	return out
}
