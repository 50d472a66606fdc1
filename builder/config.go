package builder

import "math/rand"

// builderConfig is the resolved, immutable configuration every Constructor
// receives. It is assembled once per BuildGraph call; no global state.
type builderConfig struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
}

// newBuilderConfig resolves options over deterministic defaults: "n<idx>"
// node IDs, unit edge weights, no RNG (stochastic constructors demand one
// explicitly via WithSeed or WithRand).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
