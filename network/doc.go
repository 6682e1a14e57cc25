// Package network defines the Bayesian network: a directed acyclic graph of
// discrete variables where every node owns the conditional probability
// distribution P(node | parents).
//
// Representation:
//
//	Variables live in an arena indexed by integer id; parent and child
//	relationships are stored as index slices keyed by id, never as pointers
//	between nodes. Names resolve to ids through a single lookup map. This
//	keeps validation (acyclicity, topological sort) a pure function over
//	indices and makes the structure trivially shareable: a built Network is
//	immutable and safe for any number of concurrent readers.
//
// Construction goes through Builder:
//
//	a, _ := core.NewBinary("A")
//	b, _ := core.NewBinary("B")
//	prior, _ := factor.NewCPD(a, nil, []float64{0.7, 0.3})
//	cond, _ := factor.NewCPD(b, []core.Variable{a}, []float64{0.9, 0.1, 0.2, 0.8})
//
//	net, err := network.NewBuilder().
//		Add(a, nil, prior).
//		Add(b, []string{"A"}, cond).
//		Build()
//
// Build validates everything eagerly - unknown parents, duplicate names,
// CPD/parent-set mismatches, cycles - and caches the topological order, so
// inference code downstream never re-checks structure.
//
// The YAML codec in yaml.go (DecodeYAML / EncodeYAML) round-trips a network
// definition as a plain data document for storage and sharing.
package network
