package network

import (
	"fmt"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
)

// Builder assembles a Network node by node. Nodes may be added in any
// order; all structural validation happens in Build.
type Builder struct {
	nodes []builderNode
}

// builderNode is one pending node declaration.
type builderNode struct {
	v       core.Variable
	parents []string
	cpd     *factor.Factor
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add declares a node: the variable, the names of its parents, and the CPD
// P(v | parents). Parents may be declared before or after their children.
// Add never fails; Build reports all structural problems.
func (b *Builder) Add(v core.Variable, parents []string, cpd *factor.Factor) *Builder {
	ps := make([]string, len(parents))
	copy(ps, parents)
	b.nodes = append(b.nodes, builderNode{v: v, parents: ps, cpd: cpd})

	return b
}

// Build validates the declared structure and produces an immutable Network.
//
// Checks, in order:
//  1. no duplicate variable names (ErrDuplicateVariable);
//  2. every declared parent is a node (ErrUnknownParent);
//  3. every node carries a CPD whose conditioned child is the node and
//     whose parent scope equals the declared parent set, variable domains
//     included (ErrMissingCPD, ErrCPDMismatch);
//  4. the parent relation is acyclic (ErrCycleDetected).
//
// The topological order is computed here and cached on the Network.
func (b *Builder) Build() (*Network, error) {
	n := &Network{
		vars:     make([]core.Variable, len(b.nodes)),
		index:    make(map[string]int, len(b.nodes)),
		parents:  make([][]int, len(b.nodes)),
		children: make([][]int, len(b.nodes)),
		cpds:     make([]*factor.Factor, len(b.nodes)),
	}

	// 1. Register the arena and reject duplicates.
	for i, node := range b.nodes {
		if _, dup := n.index[node.v.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, node.v.Name)
		}
		n.vars[i] = node.v
		n.index[node.v.Name] = i
	}

	// 2. Wire adjacency and validate each node's CPD.
	for i, node := range b.nodes {
		ids := make([]int, len(node.parents))
		for k, name := range node.parents {
			pid, ok := n.index[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q (parent of %q)", ErrUnknownParent, name, node.v.Name)
			}
			ids[k] = pid
		}
		n.parents[i] = ids
		for _, pid := range ids {
			n.children[pid] = append(n.children[pid], i)
		}

		if err := checkCPD(node, n); err != nil {
			return nil, err
		}
		n.cpds[i] = node.cpd
	}

	// 3. Acyclicity + topological order in one DFS pass.
	topo, err := topologicalOrder(n.children)
	if err != nil {
		return nil, err
	}
	n.topo = topo

	return n, nil
}

// checkCPD verifies a node's CPD against its declared structure: the
// conditioned child is the node's variable and the CPD parent scope equals
// the declared parent list, domains included.
func checkCPD(node builderNode, n *Network) error {
	if node.cpd == nil {
		return fmt.Errorf("%w: %q", ErrMissingCPD, node.v.Name)
	}
	if !node.cpd.IsCPD() {
		return fmt.Errorf("%w: factor for %q is not per-row normalized", ErrCPDMismatch, node.v.Name)
	}

	child, _ := node.cpd.Child()
	if child.Name != node.v.Name || child.Card != node.v.Card {
		return fmt.Errorf("%w: CPD conditions %q (card %d), node is %q (card %d)",
			ErrCPDMismatch, child.Name, child.Card, node.v.Name, node.v.Card)
	}

	scope := node.cpd.Scope()
	scopeParents := scope[:len(scope)-1]
	if len(scopeParents) != len(node.parents) {
		return fmt.Errorf("%w: CPD of %q has %d parents, node declares %d",
			ErrCPDMismatch, node.v.Name, len(scopeParents), len(node.parents))
	}
	declared := make(map[string]struct{}, len(node.parents))
	for _, p := range node.parents {
		declared[p] = struct{}{}
	}
	for _, sv := range scopeParents {
		if _, ok := declared[sv.Name]; !ok {
			return fmt.Errorf("%w: CPD of %q scopes %q, which is not a declared parent",
				ErrCPDMismatch, node.v.Name, sv.Name)
		}
		arena := n.vars[n.index[sv.Name]]
		if arena.Card != sv.Card {
			return fmt.Errorf("%w: CPD of %q sees %q with card %d, network has card %d",
				ErrCPDMismatch, node.v.Name, sv.Name, sv.Card, arena.Card)
		}
	}

	return nil
}
