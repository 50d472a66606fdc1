// Package replay navigates a completed search trace step by step.
//
// What
//
//	A Controller is a cursor over the immutable Step sequence produced by a
//	search run. It moves forward, backward, seeks to an arbitrary index, and
//	resets to the beginning. Because every Step carries a full snapshot of
//	frontier, visited and distance state, any seek is O(1): the controller
//	never replays or diffs earlier steps to reconstitute state.
//
// Why
//
//	Scrubber-style UIs and debugging harnesses want random access into a run
//	("what did the frontier look like at step 17?") without re-running the
//	algorithm. Materializing the full trace up front and navigating it here
//	keeps the algorithms free of suspension points and keeps navigation pure.
//
// Semantics
//
//	Indices range over [0, Len()-1] and the cursor starts at 0. StepForward
//	at the last index and StepBackward at index 0 are no-ops that return the
//	current step unchanged; JumpTo clamps out-of-range targets into the valid
//	interval. There is no terminal state.
//
// Concurrency
//
//	A Controller is single-consumer. It holds its trace read-only and never
//	mutates it, so many controllers may share one result, but one Controller
//	must not be navigated from multiple goroutines.
//
// Errors
//
//	ErrEmptyTrace - constructing a Controller over zero steps.
//
// Usage
//
//	res, _ := search.Dijkstra(g, "A", search.WithGoal("D"))
//	ctl, err := replay.New(res)
//	if err != nil { ... }
//	for !ctl.AtEnd() {
//	    st := ctl.StepForward()
//	    fmt.Println(st.Index, st.Description)
//	}
//	ctl.Reset()
package replay
