package builder

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

const minPathNodes = 2

// Path returns a Constructor building the simple path P_n: nodes 0..n-1
// chained by n-1 edges emitted in ascending index order.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("path: n=%d < min %d: %w", n, minPathNodes, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, n); err != nil {
			return fmt.Errorf("path: %w", err)
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("path: edge %s-%s: %w", u, v, err)
			}
		}
		return nil
	}
}
