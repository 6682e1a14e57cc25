// Package bayes is your in-memory toolkit for building, querying, and
// learning discrete Bayesian networks — from factor algebra to exact and
// approximate inference.
//
// 🚀 What is bayes?
//
//	A deterministic, dependency-light probabilistic modeling library that
//	brings together:
//		• Core primitives: categorical variables & assignments
//		• Factor algebra: product, division, marginalization, reduction
//		• Network assembly: a validating builder over CPDs + a YAML codec
//		• Exact inference: variable elimination with a min-fill ordering
//		• Approximate inference: ancestral sampling, likelihood weighting,
//		  Gibbs chains
//		• Parameter learning: maximum likelihood with Laplace smoothing
//
// ✨ Why choose bayes?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – seeded randomness, deterministic heuristics
//   - Honest numerics – zero-evidence and degenerate cases are errors,
//     never NaN
//   - Pure Go – no cgo, dense float64 tables all the way down
//
// Under the hood, everything is organized under six subpackages:
//
//	core/        — Variable & Assignment, the vocabulary of every query
//	factor/      — dense factors over categorical scopes + the algebra
//	network/     — the validated DAG of CPDs, builder & YAML round trip
//	elimination/ — exact posteriors via sum-product variable elimination
//	sampling/    — forward, importance & Gibbs estimators over one rng
//	estimate/    — fitting CPDs back from complete datasets
//
// Quick ASCII example:
//
//	    D   I
//	     ╲ ╱ ╲
//	      G   S
//	      │
//	      L
//
//	the classic student network: five variables, five CPDs, one query
//	away from P(I | D, L, S).
//
// Dive into the subpackage docs for runnable examples of each stage of
// the pipeline, from Builder to posterior.
//
//	go get github.com/katalvlaran/bayes
package bayes
