package builder

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

const minCycleNodes = 3

// Cycle returns a Constructor building the simple cycle C_n: the path edges
// 0-1, 1-2, ... followed by the closing edge (n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("cycle: n=%d < min %d: %w", n, minCycleNodes, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, n); err != nil {
			return fmt.Errorf("cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("cycle: edge %s-%s: %w", u, v, err)
			}
		}
		return nil
	}
}
