// Package estimate learns network parameters from complete data.
//
// Given a network structure and a dataset of complete records, CPD fits a
// single conditional table by maximum likelihood and Fit refits every table
// at once, returning a new network over the same DAG. Estimates are
// relative state frequencies per parent configuration; an optional Laplace
// pseudo-count smooths away zero probabilities and rescues parent rows the
// data never visits.
//
// The package closes the loop with sampling.Dataset: parameters fitted
// from a network's own synthetic records converge to the originals as the
// record count grows.
package estimate
