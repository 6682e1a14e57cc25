package sampling

import "math/rand"

// defaultSeed is the fixed seed substituted when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for the given seed.
// Policy: seed==0 uses defaultSeed; any other seed is used verbatim.
// math/rand.Rand is not goroutine-safe; give each worker its own.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// categorical draws an index from the unnormalized non-negative weights,
// or -1 when the total mass is zero.
func categorical(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}

	draw := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if draw < acc {
			return i
		}
	}

	// Float round-off can leave draw == total; take the last live state.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}

	return -1
}
