package builder

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor building the complete graph K_n: every
// unordered node pair connected, pairs emitted in (i, j) index order with
// i < j. On a directed graph both orientations are emitted, (i, j) first.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("complete: n=%d < min %d: %w", n, minCompleteNodes, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, n); err != nil {
			return fmt.Errorf("complete: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("complete: edge %s-%s: %w", u, v, err)
				}
				if g.Directed() {
					if err := g.AddEdge(v, u, cfg.weightFn(cfg.rng)); err != nil {
						return fmt.Errorf("complete: edge %s-%s: %w", v, u, err)
					}
				}
			}
		}
		return nil
	}
}
