package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the search entry points and helpers.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownKind indicates an algorithm kind outside the four variants.
	ErrUnknownKind = errors.New("search: unknown algorithm kind")

	// ErrStartNotFound indicates the start node is absent from the graph.
	ErrStartNotFound = errors.New("search: start node not found")

	// ErrGoalNotFound indicates a goal was supplied but is absent from the
	// graph. A goal that exists yet is unreachable is not an error; Run
	// reports it as Found=false.
	ErrGoalNotFound = errors.New("search: goal node not found")

	// ErrNoPath is returned by ReconstructPath when the parent chain never
	// reaches the start node. Run itself never returns it.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrBrokenPath is returned by PathCost when two consecutive path nodes
	// have no connecting edge.
	ErrBrokenPath = errors.New("search: path contains a missing edge")

	// ErrInadmissibleHeuristic reports a heuristic estimate that exceeds the
	// true remaining cost. Advisory: only CheckAdmissible returns it, and
	// Run never performs the check.
	ErrInadmissibleHeuristic = errors.New("search: heuristic overestimates true remaining cost")
)

// Kind selects one of the four search strategies.
type Kind uint8

const (
	KindBFS Kind = iota
	KindDFS
	KindDijkstra
	KindAStar
)

// Kinds returns all algorithm kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{KindBFS, KindDFS, KindDijkstra, KindAStar}
}

// String returns the canonical wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBFS:
		return "bfs"
	case KindDFS:
		return "dfs"
	case KindDijkstra:
		return "dijkstra"
	case KindAStar:
		return "astar"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a wire name (bfs, dfs, dijkstra, astar; case-insensitive)
// to its Kind. Fails with ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return KindBFS, nil
	case "dfs":
		return KindDFS, nil
	case "dijkstra":
		return KindDijkstra, nil
	case "astar", "a*":
		return KindAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Options configures a single search run.
//
// Goal      - optional target node. BFS/DFS exit early when it is popped;
//             Dijkstra/A* exit when it is finalized. Empty means full
//             traversal (full single-source table for the weighted pair).
// Heuristic - remaining-cost estimate, honored by A* only.
// Ctx       - cooperative cancellation, checked once per pop.
// OnStep    - called after each Step is appended; for streaming consumers.
type Options struct {
	Goal      string
	Heuristic Heuristic
	Ctx       context.Context
	OnStep    func(Step)
}

// Option is a functional option for configuring a search run.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: no goal, no heuristic,
// background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithGoal sets the target node for early exit and path reconstruction.
func WithGoal(id string) Option {
	return func(o *Options) { o.Goal = id }
}

// WithHeuristic sets the A* remaining-cost estimate. Other kinds ignore it.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithContext attaches a context; cancellation is observed once per pop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback fired after every appended Step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) { o.OnStep = fn }
}
