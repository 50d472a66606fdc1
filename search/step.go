package search

// StepType tags what one recorded step represents.
type StepType string

const (
	// StepStart is the initial discovery of the start node (always index 0).
	StepStart StepType = "start"
	// StepVisit is one node popped from the frontier and processed.
	StepVisit StepType = "visit"
	// StepGoal is the goal node popped; always the final step of a
	// successful run.
	StepGoal StepType = "goal"
)

// Step is one immutable snapshot of algorithm state. The schema is stable
// and JSON-serializable for cross-process consumers (renderers, replay UIs).
//
// Frontier holds discovered-but-not-finalized nodes in deterministic order:
// queue order for BFS, stack order (bottom to top) for DFS, discovery order
// for Dijkstra/A*. Visited holds finalized nodes for Dijkstra/A* and
// discovered nodes for BFS/DFS (which mark visited at discovery), so it
// grows monotonically either way. Distances maps discovered node IDs to
// tentative cost (depth for BFS); it is omitted for DFS.
type Step struct {
	Index       int                `json:"index"`
	Type        StepType           `json:"type"`
	CurrentNode string             `json:"currentNode"`
	Frontier    []string           `json:"frontier"`
	Visited     []string           `json:"visited"`
	Distances   map[string]float64 `json:"distances,omitempty"`
	Description string             `json:"description,omitempty"`
}

// Result is the outcome of one search run. Path is empty (never nil) when no
// goal was supplied or none was reachable; "no path" is an expected outcome,
// not an error. TotalCost is the sum of edge weights along Path for
// Dijkstra/A* and the edge count for BFS/DFS. NodesExplored counts processed
// pops. Parents carries the final parent links so callers can drive
// ReconstructPath themselves; Distances carries the final table (the full
// single-source table when Dijkstra/A* ran without a goal).
type Result struct {
	Found         bool               `json:"found"`
	Path          []string           `json:"path"`
	TotalCost     float64            `json:"totalCost"`
	NodesExplored int                `json:"nodesExplored"`
	Steps         []Step             `json:"steps"`
	Distances     map[string]float64 `json:"distances,omitempty"`
	Parents       map[string]string  `json:"parents,omitempty"`
}

// Recorder is an append-only Step log owned by exactly one search run.
// Record copies every snapshot it is handed; a recorded Step never observes
// later mutations of the live frontier, visited list or distance table.
type Recorder struct {
	steps []Step
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one Step built from copies of the supplied state and
// returns it. Index is assigned sequentially from zero.
func (r *Recorder) Record(t StepType, current string, frontier, visited []string, distances map[string]float64, description string) Step {
	st := Step{
		Index:       len(r.steps),
		Type:        t,
		CurrentNode: current,
		Frontier:    cloneIDs(frontier),
		Visited:     cloneIDs(visited),
		Distances:   cloneDistances(distances),
		Description: description,
	}
	r.steps = append(r.steps, st)
	return st
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded sequence. The slice is a copy; the Steps inside
// are read-only by contract.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// cloneIDs copies an ID slice; nil input yields an empty, non-nil slice so
// frontier/visited always marshal as JSON arrays.
func cloneIDs(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// cloneDistances copies a distance table; empty input yields nil so the
// field is omitted from JSON.
func cloneDistances(in map[string]float64) map[string]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
