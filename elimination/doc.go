// Package elimination answers exact conditional queries P(targets | evidence)
// on a Bayesian network by sum-product variable elimination.
//
// 🚀 How it works (K&F Algorithm 9.1):
//
//  1. Every CPD in the network is reduced by the evidence, fixing observed
//     variables and slicing them out of the factor scopes.
//  2. An elimination order over the hidden variables (neither target nor
//     evidence) is chosen by the min-fill heuristic: repeatedly eliminate
//     the variable whose removal adds the fewest new edges to the
//     interaction graph, breaking ties by name for determinism.
//  3. For each variable in that order, all factors mentioning it are
//     multiplied into one and the variable is summed out.
//  4. The surviving factors are multiplied and normalized, yielding the
//     posterior over exactly the target variables.
//
// The answer is exact: any valid elimination order produces the same
// normalized result (the order only changes intermediate factor sizes, which
// are exponential in the induced width). WithOrder overrides the heuristic
// when the caller knows a better order - or wants to verify that claim.
//
// Errors:
//
//	ErrInvalidQuery  - targets/evidence overlap, name an unknown variable,
//	                   are empty, or evidence holds an out-of-range state.
//	ErrZeroEvidence  - the evidence has probability ~0 under the model;
//	                   reported instead of a NaN-filled table.
//	ErrBadOrder      - a WithOrder list is not a permutation of the hidden
//	                   variables.
package elimination
