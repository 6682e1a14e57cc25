package sampling

import "github.com/katalvlaran/bayes/factor"

// MinEffectiveSamples is the effective-sample threshold under which a
// Result is flagged LowConfidence.
const MinEffectiveSamples = 100.0

// Result is a sampling-based estimate of a posterior distribution.
//
// Dist is normalized over exactly the query's target variables, like the
// exact engine's answer, but it is an estimate: correct only in the
// large-sample limit. Samples is the number of particles (importance) or
// kept chain states (Gibbs) behind it. EffectiveSamples discounts that
// count for weight imbalance - for importance sampling it is (Σw)²/Σw²,
// for Gibbs the raw kept count. LowConfidence marks estimates whose
// effective count fell under MinEffectiveSamples; it is a diagnostic, not
// an error.
type Result struct {
	Dist             *factor.Factor
	Samples          int
	EffectiveSamples float64
	LowConfidence    bool
}
