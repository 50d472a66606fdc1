package search

import (
	"container/heap"
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// AStar runs A* from start with the heuristic supplied via WithHeuristic.
// The machinery is exactly Dijkstra's; only the heap priority changes to
// g(n) + h(n, goal). A missing or zero heuristic therefore reproduces
// Dijkstra's trace verbatim.
//
// Optimality holds only for admissible heuristics, ones that never
// overestimate the true remaining cost. The engine does not verify this;
// use CheckAdmissible on small graphs when in doubt. See Run.
func AStar(g *core.Graph, start string, opts ...Option) (*Result, error) {
	return Run(g, KindAStar, start, opts...)
}

// floatSlack absorbs accumulated floating-point noise when comparing a
// heuristic estimate against an exact distance.
const floatSlack = 1e-9

// CheckAdmissible verifies h against the true remaining cost to goal for
// every node that can reach it, and reports the first overestimate via
// ErrInadmissibleHeuristic. True costs come from a reverse-edge Dijkstra
// rooted at the goal, so the check is exact but costs a full search: advisory
// tooling for small graphs and tests, never invoked by Run. A nil heuristic
// is trivially admissible.
func CheckAdmissible(g *core.Graph, goal string, h Heuristic) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(goal) {
		return fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}
	if h == nil {
		return nil
	}

	trueDist := reverseDistances(g, goal)
	for _, id := range g.NodeIDs() {
		td, reachable := trueDist[id]
		if !reachable {
			continue
		}
		if est := h(id, goal); est > td+floatSlack {
			return fmt.Errorf("%w: h(%s)=%g exceeds true cost %g", ErrInadmissibleHeuristic, id, est, td)
		}
	}
	return nil
}

// reverseDistances computes shortest distances *to* root by running Dijkstra
// over transposed edges.
func reverseDistances(g *core.Graph, root string) map[string]float64 {
	radj := make(map[string][]core.Arc, g.NodeCount())
	for _, e := range g.Edges() {
		radj[e.To] = append(radj[e.To], core.Arc{To: e.From, Weight: e.Weight})
		if !e.Directed {
			radj[e.From] = append(radj[e.From], core.Arc{To: e.To, Weight: e.Weight})
		}
	}

	dist := map[string]float64{root: 0}
	done := make(map[string]bool, g.NodeCount())
	pq := frontierPQ{{id: root}}
	heap.Init(&pq)
	var seq uint64
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		if done[item.id] {
			continue
		}
		done[item.id] = true
		for _, a := range radj[item.id] {
			if done[a.To] {
				continue
			}
			nd := dist[item.id] + a.Weight
			if cur, seen := dist[a.To]; !seen || nd < cur {
				dist[a.To] = nd
				seq++
				heap.Push(&pq, &pqItem{id: a.To, g: nd, f: nd, seq: seq})
			}
		}
	}
	return dist
}
