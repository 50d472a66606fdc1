package search

import (
	"fmt"

	"github.com/algowalk/steptrace/core"
)

// Run executes one search of the given kind from start and returns the full
// trace. It validates inputs up front (ErrNilGraph, ErrUnknownKind,
// ErrStartNotFound, ErrGoalNotFound) and then runs to completion; an
// unreachable goal yields Found=false, never an error.
func Run(g *core.Graph, kind Kind, start string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Fail fast on structural problems.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if o.Goal != "" && !g.HasNode(o.Goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, o.Goal)
	}

	// 2) Prepare per-run state. The recorder is owned by this run alone.
	n := g.NodeCount()
	s := &runState{
		g:       g,
		kind:    kind,
		opts:    o,
		rec:     NewRecorder(),
		start:   start,
		visited: make(map[string]bool, n),
		dist:    make(map[string]float64, n),
		parent:  make(map[string]string, n),
	}

	// 3) Dispatch on the kind tag: one contract, four strategies.
	var err error
	switch kind {
	case KindBFS:
		err = s.runBFS()
	case KindDFS:
		err = s.runDFS()
	case KindDijkstra:
		err = s.runWeighted(nil)
	case KindAStar:
		err = s.runWeighted(o.Heuristic)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}

	return s.result()
}

// runState holds the mutable state of a single run. Exactly one Step is
// appended per processed pop, plus the leading start-discovery step.
type runState struct {
	g     *core.Graph
	kind  Kind
	opts  Options
	rec   *Recorder
	start string

	visited    map[string]bool // BFS/DFS: discovered; weighted: finalized
	visitOrder []string        // append order backs every Visited snapshot
	dist       map[string]float64
	parent     map[string]string
	discOrder  []string // weighted only: discovery order for frontier snapshots
	explored   int      // processed pops
	found      bool
}

// markVisited adds id to the visited set and its ordered snapshot backing.
func (s *runState) markVisited(id string) {
	s.visited[id] = true
	s.visitOrder = append(s.visitOrder, id)
}

// isGoal reports whether id is the configured goal.
func (s *runState) isGoal(id string) bool {
	return s.opts.Goal != "" && id == s.opts.Goal
}

// checkCtx observes cooperative cancellation, once per pop.
func (s *runState) checkCtx() error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
		return nil
	}
}

// record appends one snapshot and fires the OnStep callback.
func (s *runState) record(t StepType, current string, frontier []string, distances map[string]float64, desc string) {
	st := s.rec.Record(t, current, frontier, s.visitOrder, distances, desc)
	if s.opts.OnStep != nil {
		s.opts.OnStep(st)
	}
}

// result assembles the Result once the strategy loop has finished.
func (s *runState) result() (*Result, error) {
	res := &Result{
		Found:         s.found,
		Path:          []string{},
		NodesExplored: s.explored,
		Steps:         s.rec.Steps(),
	}
	if len(s.dist) > 0 {
		res.Distances = s.dist
	}
	if len(s.parent) > 0 {
		res.Parents = s.parent
	}

	if s.found {
		path, err := ReconstructPath(s.parent, s.start, s.opts.Goal)
		if err != nil {
			return nil, err
		}
		res.Path = path
		switch s.kind {
		case KindBFS, KindDFS:
			res.TotalCost = float64(len(path) - 1)
		default:
			res.TotalCost = s.dist[s.opts.Goal]
		}
	}
	return res, nil
}
