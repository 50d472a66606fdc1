package search

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// DFS runs depth-first search from start. See Run.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	return Run(g, KindDFS, start, opts...)
}

// runDFS walks the graph with a LIFO frontier. Neighbors are pushed in
// reverse adjacency order so the first-listed neighbor is popped first,
// keeping the intuitive leftmost-branch-first exploration. Visited is marked
// at discovery, mirroring BFS, so already-seen nodes are never re-pushed.
// DFS ignores weights and carries no distance table.
func (s *runState) runDFS() error {
	stack := make([]string, 0, s.g.NodeCount())

	s.markVisited(s.start)
	stack = append(stack, s.start)
	s.record(StepStart, s.start, stack, nil,
		fmt.Sprintf("starting %s at %s", s.kind, s.start))

	for len(stack) > 0 {
		if err := s.checkCtx(); err != nil {
			return err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.explored++

		if s.isGoal(cur) {
			s.found = true
			s.record(StepGoal, cur, stack,
				nil, fmt.Sprintf("goal %s reached", cur))
			return nil
		}

		neighbors, err := s.g.Neighbors(cur)
		if err != nil {
			return fmt.Errorf("search: neighbors of %q: %w", cur, err)
		}
		discovered := 0
		for i := len(neighbors) - 1; i >= 0; i-- {
			nb := neighbors[i]
			if s.visited[nb] {
				continue
			}
			s.markVisited(nb)
			s.parent[nb] = cur
			stack = append(stack, nb)
			discovered++
		}

		s.record(StepVisit, cur, stack, nil,
			fmt.Sprintf("visiting %s, discovered %d neighbors", cur, discovered))
	}
	return nil
}
