package builder

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

const minSparseNodes = 2

// RandomSparse returns a Constructor building an Erdős–Rényi graph G(n, p):
// each candidate pair receives an edge with probability p. Candidate pairs
// are scanned in (i, j) index order, i < j for undirected graphs and all
// ordered pairs for directed ones, so a fixed seed reproduces the exact
// graph. Pairs already connected are left alone, which lets RandomSparse
// compose as a chord generator over an existing topology, e.g. after Path(n)
// to guarantee connectivity. Requires an RNG via WithSeed or WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("randomsparse: n=%d < min %d: %w", n, minSparseNodes, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("randomsparse: p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("randomsparse: %w", ErrNeedRandSource)
		}
		if err := addNodes(g, cfg, n); err != nil {
			return fmt.Errorf("randomsparse: %w", err)
		}

		for i := 0; i < n; i++ {
			jStart := i + 1
			if g.Directed() {
				jStart = 0
			}
			for j := jStart; j < n; j++ {
				if j == i {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				if _, exists := g.EdgeWeight(u, v); exists {
					continue
				}
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("randomsparse: edge %s-%s: %w", u, v, err)
				}
			}
		}
		return nil
	}
}
