// Package sampling implements approximate inference for Bayesian networks:
// ancestral (forward) sampling, likelihood-weighted importance sampling, and
// Gibbs-sampling MCMC.
//
// 🚀 The three procedures:
//
//   - Forward draws one complete assignment by sampling every variable from
//     its CPD in topological order (K&F Algorithm 12.1). Each call is
//     independent; it is the building block for synthetic datasets and for
//     no-evidence marginal estimates.
//
//   - InferImportance estimates P(targets | evidence) by likelihood
//     weighting (K&F 12.2): evidence variables are clamped and each particle
//     is weighted by the probability of the clamped states given its sampled
//     parents. The estimate is the weight-normalized empirical distribution,
//     a self-normalized estimator that converges in the large-sample limit.
//
//   - InferGibbs runs a Markov chain (K&F Algorithm 12.4) that resamples one
//     hidden variable at a time from its full conditional - the product of
//     its CPD and its children's CPDs over the Markov blanket - then
//     estimates the posterior as the empirical frequency of kept states.
//     Chain state is an explicit Chain value: inspectable, steppable, and
//     resumable, with burn-in and thinning visible to the caller.
//
// None of these are exact: results converge in the limit and carry their
// sample budget in the returned Result. InferImportance also reports the
// effective sample size (Σw)²/Σw², and both estimators mark the Result
// LowConfidence when the effective count falls under MinEffectiveSamples -
// a diagnostic, never an error.
//
// Randomness is an explicit dependency: every procedure takes a *rand.Rand
// and the package never touches process-global randomness, so a fixed seed
// reproduces a run exactly.
package sampling
