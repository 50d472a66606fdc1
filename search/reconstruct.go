package search

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// ReconstructPath walks parent links backward from goal until it reaches
// start, then returns the sequence start..goal inclusive. It fails with
// ErrNoPath when the chain never reaches start (unreachable goal). Run calls
// it only for found goals; callers may drive it directly with
// Result.Parents, which is where ErrNoPath surfaces.
func ReconstructPath(parents map[string]string, start, goal string) ([]string, error) {
	if goal == start {
		return []string{start}, nil
	}

	// The chain can hold at most one link per recorded parent; anything
	// longer means it will never terminate at start.
	path := []string{goal}
	cur := goal
	for len(path) <= len(parents)+1 {
		p, ok := parents[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not reachable from %q", ErrNoPath, goal, start)
		}
		path = append(path, p)
		if p == start {
			reverse(path)
			return path, nil
		}
		cur = p
	}
	return nil, fmt.Errorf("%w: parent chain from %q never reaches %q", ErrNoPath, goal, start)
}

// PathCost sums the stored edge weights along consecutive path nodes. It
// fails with ErrBrokenPath when two consecutive nodes have no traversable
// edge. An empty or single-node path costs zero. For the unit-cost
// algorithms (BFS/DFS) the equivalent total is simply len(path)-1.
func PathCost(g *core.Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.EdgeWeight(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrBrokenPath, path[i], path[i+1])
		}
		total += w
	}
	return total, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
