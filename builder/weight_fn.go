package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is assigned to every edge when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. Implementations
// must be deterministic for a given RNG state and must return finite,
// non-negative values; core rejects anything else at insertion.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn yields the given value for every edge. Panics if value is
// negative.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantWeightFn value must be >= 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly from [min, max). Panics unless
// 0 <= min <= max. With a nil RNG it falls back to DefaultEdgeWeight so the
// result stays deterministic.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: UniformWeightFn requires 0 <= min <= max, got min=%g max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// WithConstantWeight fixes every edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights from U[min, max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
