package builder

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// addNodes inserts n nodes with IDs cfg.idFn(0..n-1) in ascending index
// order, which fixes the graph's node iteration order. IDs that already
// exist are kept as-is, so constructors sharing one ID scheme compose over
// the same node set.
func addNodes(g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if g.HasNode(id) {
			continue
		}
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("add node %s: %w", id, err)
		}
	}
	return nil
}
