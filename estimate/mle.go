package estimate

import (
	"fmt"

	"github.com/katalvlaran/bayes/core"
	"github.com/katalvlaran/bayes/factor"
	"github.com/katalvlaran/bayes/network"
)

// CPD fits the conditional table of one variable by maximum likelihood.
// Each table entry is the relative frequency of the child state among the
// records sharing its parent configuration; smoothing is a Laplace
// pseudo-count added to every cell before normalizing. With smoothing zero
// a never-observed parent configuration is ErrInsufficientData.
//
// Only the structure of net is consulted, never its parameters.
func CPD(net *network.Network, variable string, dataset []core.Assignment, smoothing float64) (*factor.Factor, error) {
	child, err := net.Variable(variable)
	if err != nil {
		return nil, err
	}
	parents, err := net.Parents(variable)
	if err != nil {
		return nil, err
	}
	if len(dataset) == 0 {
		return nil, fmt.Errorf("%w: fitting %q", ErrEmptyDataset, variable)
	}
	if smoothing < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadSmoothing, smoothing)
	}

	// 1. Count state co-occurrences over the CPD scope, seeded with the
	// pseudo-count. Child last keeps each parent configuration's row
	// contiguous.
	scope := make([]core.Variable, 0, len(parents)+1)
	scope = append(scope, parents...)
	scope = append(scope, child)

	counts := make([]float64, factor.Size(scope))
	for i := range counts {
		counts[i] = smoothing
	}
	for r, record := range dataset {
		idx, err := factor.Offset(scope, record)
		if err != nil {
			if !record.Covers(scope...) {
				return nil, fmt.Errorf("%w: record %d fitting %q", ErrIncompleteRecord, r, variable)
			}

			return nil, fmt.Errorf("estimate: record %d fitting %q: %w", r, variable, err)
		}
		counts[idx]++
	}

	// 2. Normalize each parent configuration's row into a distribution.
	for row := 0; row < len(counts); row += child.Card {
		sum := 0.0
		for i := row; i < row+child.Card; i++ {
			sum += counts[i]
		}
		if sum <= 0 {
			return nil, fmt.Errorf("%w: row %d fitting %q", ErrInsufficientData, row/child.Card, variable)
		}
		for i := row; i < row+child.Card; i++ {
			counts[i] /= sum
		}
	}

	return factor.NewCPD(child, parents, counts)
}

// Fit refits every conditional table of net from the dataset and returns a
// new network over the same structure. net's own parameters are untouched.
func Fit(net *network.Network, dataset []core.Assignment, smoothing float64) (*network.Network, error) {
	b := network.NewBuilder()
	for _, v := range net.TopologicalOrder() {
		cpd, err := CPD(net, v.Name, dataset, smoothing)
		if err != nil {
			return nil, err
		}

		parents, err := net.Parents(v.Name)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(parents))
		for i, p := range parents {
			names[i] = p.Name
		}

		b.Add(v, names, cpd)
	}

	return b.Build()
}
