// Package search runs BFS, DFS, Dijkstra and A* over a core.Graph while
// recording a deterministic, replayable trace of every algorithmic step.
//
// What:
//
//	Run (or the direct entry points BFS, DFS, Dijkstra, AStar) executes one
//	search to completion and returns a Result: whether a goal was reached,
//	the reconstructed path, its total cost, how many nodes were processed,
//	and the full ordered Step log. Each Step is an immutable snapshot of the
//	frontier, the visited set, the distance table and the current node at
//	one unit of work - one node popped from the frontier and processed -
//	plus one leading snapshot for the discovery of the start node.
//
// Why full snapshots:
//
//	Steps store complete copies rather than diffs. Memory grows with
//	O(steps × state), but any step can be inspected in O(1), which is what
//	scrubber-style replay needs (see package replay). Snapshots never alias
//	live algorithm state; later mutations are invisible to recorded steps.
//
// Determinism:
//
//	All four algorithms break ties by adjacency insertion order, and the
//	weighted frontier orders equal priorities by push sequence. Running the
//	same algorithm twice over an unmodified graph yields byte-identical
//	step logs.
//
// The four strategies:
//
//	BFS      - FIFO frontier, unit edge cost, visited marked at discovery
//	           (enqueue time); returns minimum-edge-count paths.
//	DFS      - LIFO frontier, neighbors pushed in reverse adjacency order so
//	           the first-listed neighbor is explored first; visited marked
//	           at discovery.
//	Dijkstra - binary min-heap with lazy deletion (duplicate entries instead
//	           of decrease-key; stale entries skipped on pop); relaxation on
//	           strict improvement only; early exit when the goal is popped.
//	AStar    - Dijkstra's machinery with priority g(n) + h(n, goal). The
//	           heuristic must never overestimate the true remaining cost;
//	           admissibility is the caller's obligation (CheckAdmissible is
//	           an advisory helper, never invoked by Run).
//
// Goals:
//
//	BFS and DFS accept an optional goal for early exit and otherwise run to
//	full traversal. Dijkstra and A* also accept a missing goal, in which
//	case they produce the full single-source distance table. An unreachable
//	goal is data, not an error: Run returns Found=false with an empty path.
//
// Errors (sentinel):
//
//	ErrNilGraph              - nil graph.
//	ErrUnknownKind           - Kind outside the four variants.
//	ErrStartNotFound         - start node absent from the graph.
//	ErrGoalNotFound          - goal supplied but absent from the graph.
//	ErrNoPath                - ReconstructPath invoked with an unreachable goal.
//	ErrBrokenPath            - PathCost over a sequence with a missing edge.
//	ErrInadmissibleHeuristic - advisory, from CheckAdmissible only.
//
// Usage:
//
//	res, err := search.Run(g, search.KindDijkstra, "A", search.WithGoal("D"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Path, res.TotalCost, len(res.Steps))
package search
