package search

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// BFS runs breadth-first search from start. See Run.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	return Run(g, KindBFS, start, opts...)
}

// runBFS walks the graph with a FIFO frontier. Nodes are marked visited at
// the moment they are discovered (enqueued), never when processed; that is
// what prevents duplicate enqueues and guarantees minimum-edge-count paths.
// Ties among equally close neighbors follow adjacency insertion order.
func (s *runState) runBFS() error {
	queue := make([]string, 0, s.g.NodeCount())

	// Discover the start node: depth 0, first snapshot.
	s.markVisited(s.start)
	s.dist[s.start] = 0
	queue = append(queue, s.start)
	s.record(StepStart, s.start, queue, s.dist,
		fmt.Sprintf("starting %s at %s", s.kind, s.start))

	for len(queue) > 0 {
		if err := s.checkCtx(); err != nil {
			return err
		}

		cur := queue[0]
		queue = queue[1:]
		s.explored++

		if s.isGoal(cur) {
			s.found = true
			s.record(StepGoal, cur, queue, s.dist,
				fmt.Sprintf("goal %s reached, depth %g", cur, s.dist[cur]))
			return nil
		}

		neighbors, err := s.g.Neighbors(cur)
		if err != nil {
			return fmt.Errorf("search: neighbors of %q: %w", cur, err)
		}
		discovered := 0
		for _, nb := range neighbors {
			if s.visited[nb] {
				continue
			}
			s.markVisited(nb)
			s.dist[nb] = s.dist[cur] + 1
			s.parent[nb] = cur
			queue = append(queue, nb)
			discovered++
		}

		s.record(StepVisit, cur, queue, s.dist,
			fmt.Sprintf("visiting %s, discovered %d neighbors", cur, discovered))
	}
	return nil
}
