package builder

import "math/rand"

// BuilderOption customizes constructor behavior by mutating the resolved
// builderConfig. Option constructors validate their arguments and panic on
// nonsense; constructors themselves never panic.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithRand attaches an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a freshly seeded RNG, locking stochastic constructors to
// a reproducible stream.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
