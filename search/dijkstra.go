package search

import (
	"container/heap"
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// Dijkstra runs Dijkstra's shortest path from start. With a goal it exits
// the moment the goal is popped and finalized; without one it computes the
// full single-source distance table. See Run.
func Dijkstra(g *core.Graph, start string, opts ...Option) (*Result, error) {
	return Run(g, KindDijkstra, start, opts...)
}

// runWeighted is the shared engine behind Dijkstra and A*: a binary min-heap
// ordered by priority f = g(n) + h(n, goal), with h identically zero for
// Dijkstra. It uses lazy deletion instead of decrease-key: every relaxation
// pushes a fresh entry, and stale entries (nodes already finalized) are
// skipped on pop. Equal priorities resolve by push sequence, so tie-breaking
// stays in adjacency insertion order. Negative weights cannot occur; core
// rejects them at construction.
func (s *runState) runWeighted(h Heuristic) error {
	pq := make(frontierPQ, 0, s.g.NodeCount())
	heap.Init(&pq)

	var seq uint64
	push := func(id string, gCost float64) {
		f := gCost
		if h != nil {
			f += h(id, s.opts.Goal)
		}
		heap.Push(&pq, &pqItem{id: id, g: gCost, f: f, seq: seq})
		seq++
	}

	// Discover the start node: tentative distance 0, first snapshot.
	s.dist[s.start] = 0
	s.discOrder = append(s.discOrder, s.start)
	push(s.start, 0)
	s.record(StepStart, s.start, s.openFrontier(), s.dist,
		fmt.Sprintf("starting %s at %s", s.kind, s.start))

	for pq.Len() > 0 {
		if err := s.checkCtx(); err != nil {
			return err
		}

		// 1) Pop the lowest-priority entry; drop it if stale.
		item := heap.Pop(&pq).(*pqItem)
		if s.visited[item.id] {
			continue
		}

		// 2) Finalize: item.g is now the settled shortest distance.
		s.markVisited(item.id)
		s.explored++

		if s.isGoal(item.id) {
			s.found = true
			s.record(StepGoal, item.id, s.openFrontier(), s.dist,
				fmt.Sprintf("goal %s reached, cost %g", item.id, s.dist[item.id]))
			return nil
		}

		// 3) Relax outgoing arcs in insertion order; only strict
		//    improvements update the table and push a new entry.
		arcs, err := s.g.Arcs(item.id)
		if err != nil {
			return fmt.Errorf("search: arcs of %q: %w", item.id, err)
		}
		relaxed := 0
		for _, a := range arcs {
			if s.visited[a.To] {
				continue
			}
			nd := s.dist[item.id] + a.Weight
			if cur, seen := s.dist[a.To]; seen {
				if nd >= cur {
					continue
				}
			} else {
				s.discOrder = append(s.discOrder, a.To)
			}
			s.dist[a.To] = nd
			s.parent[a.To] = item.id
			push(a.To, nd)
			relaxed++
		}

		s.record(StepVisit, item.id, s.openFrontier(), s.dist,
			fmt.Sprintf("visiting %s, relaxed %d edges", item.id, relaxed))
	}
	return nil
}

// openFrontier lists discovered-but-not-finalized nodes in discovery order.
// The heap itself is unusable for snapshots: lazy deletion leaves duplicates
// and its internal layout carries no meaning.
func (s *runState) openFrontier() []string {
	out := make([]string, 0, len(s.discOrder))
	for _, id := range s.discOrder {
		if !s.visited[id] {
			out = append(out, id)
		}
	}
	return out
}

// pqItem is one frontier entry: a node, its tentative cost from the start,
// its heap priority, and the push tick that breaks priority ties.
type pqItem struct {
	id  string
	g   float64
	f   float64
	seq uint64
}

// frontierPQ is a min-heap of *pqItem ordered by f, then push sequence.
// Stale entries stay in place until popped (lazy deletion).
type frontierPQ []*pqItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

func (pq *frontierPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
