package builder

import (
	"fmt"
	"math"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/search"
)

const minGeometricNodes = 2

// RandomGeometric builds a random geometric graph: n nodes placed uniformly
// in the unit square, every pair within the given radius connected by an
// edge weighted with the exact euclidean distance. Because weights equal
// distances, search.Euclidean over the returned coordinates is admissible by
// construction, which makes these graphs the standard fixture for exercising
// A*.
//
// It stands apart from the Constructor factories since callers need the
// coordinate table as a second result. Coordinates are drawn in node index
// order (x before y), so a fixed seed reproduces the exact graph. Requires
// an RNG via WithSeed or WithRand.
func RandomGeometric(n int, radius float64, opts ...BuilderOption) (*core.Graph, map[string]search.Point, error) {
	cfg := newBuilderConfig(opts...)

	if n < minGeometricNodes {
		return nil, nil, fmt.Errorf("randomgeometric: n=%d < min %d: %w", n, minGeometricNodes, ErrTooFewNodes)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, nil, fmt.Errorf("randomgeometric: radius=%g: %w", radius, ErrInvalidRadius)
	}
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("randomgeometric: %w", ErrNeedRandSource)
	}

	g := core.NewGraph()
	coords := make(map[string]search.Point, n)
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		ids[i] = id
		coords[id] = search.Point{X: cfg.rng.Float64(), Y: cfg.rng.Float64()}
		if err := g.AddNode(id); err != nil {
			return nil, nil, fmt.Errorf("randomgeometric: add node %s: %w", id, err)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := coords[ids[i]], coords[ids[j]]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d > radius {
				continue
			}
			if err := g.AddEdge(ids[i], ids[j], d); err != nil {
				return nil, nil, fmt.Errorf("randomgeometric: edge %s-%s: %w", ids[i], ids[j], err)
			}
		}
	}
	return g, coords, nil
}
