// Dijkstra tests validate shortest-path correctness, lazy deletion of stale
// heap entries, insertion-order tie-breaking, early exit, and the goal-less
// full-table mode.
package search_test

import (
	"testing"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/search"
)

// ------------------------------------------------------------------------
// 1. Scenario fixtures: exact paths, costs, and trace shapes.
// ------------------------------------------------------------------------

func TestDijkstra_ScenarioA(t *testing.T) {
	res, err := search.Dijkstra(scenarioA(t), "A", search.WithGoal("D"))
	if err != nil {
		t.Fatal(err)
	}

	if !res.Found {
		t.Fatal("expected Found=true")
	}
	if got, want := len(res.Path), 4; got != want {
		t.Fatalf("path length = %d; want %d", got, want)
	}
	for i, id := range []string{"A", "B", "C", "D"} {
		if res.Path[i] != id {
			t.Errorf("path[%d] = %q; want %q", i, res.Path[i], id)
		}
	}
	if res.TotalCost != 6 {
		t.Errorf("totalCost = %v; want 6", res.TotalCost)
	}
	if res.NodesExplored != 4 {
		t.Errorf("nodesExplored = %d; want 4", res.NodesExplored)
	}
	if len(res.Steps) != 5 {
		t.Errorf("steps = %d; want 5 (start + 4 pops)", len(res.Steps))
	}

	// Tentative distances are visible mid-run: after A is processed only
	// A and B are discovered.
	st := res.Steps[1]
	if st.Distances["B"] != 1 {
		t.Errorf("step 1 distances[B] = %v; want 1", st.Distances["B"])
	}
	if _, ok := st.Distances["C"]; ok {
		t.Errorf("step 1 must not know C yet: %v", st.Distances)
	}
}

func TestDijkstra_ScenarioB_AvoidsTemptingHop(t *testing.T) {
	res, err := search.Dijkstra(scenarioB(t), "A", search.WithGoal("D"))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"A", "C", "D"}
	if len(res.Path) != len(want) {
		t.Fatalf("path = %v; want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Fatalf("path = %v; want %v", res.Path, want)
		}
	}
	if res.TotalCost != 3 {
		t.Errorf("totalCost = %v; want 3 (never 6 via B)", res.TotalCost)
	}
}

// ------------------------------------------------------------------------
// 2. Early exit: the goal pop ends the run before the frontier drains.
// ------------------------------------------------------------------------

func TestDijkstra_EarlyExit(t *testing.T) {
	res, err := search.Dijkstra(scenarioB(t), "A", search.WithGoal("D"))
	if err != nil {
		t.Fatal(err)
	}

	if res.NodesExplored != 3 {
		t.Errorf("nodesExplored = %d; want 3 (B stays unfinalized)", res.NodesExplored)
	}
	last := res.Steps[len(res.Steps)-1]
	if last.Type != search.StepGoal {
		t.Errorf("last step type = %s; want %s", last.Type, search.StepGoal)
	}
	if len(last.Frontier) != 1 || last.Frontier[0] != "B" {
		t.Errorf("goal-step frontier = %v; want [B]", last.Frontier)
	}
}

// ------------------------------------------------------------------------
// 3. Lazy deletion: a relaxed node leaves a stale heap entry behind; the
//    stale pop is skipped silently and never produces a step.
// ------------------------------------------------------------------------

func TestDijkstra_LazyDeletionSkipsStaleEntries(t *testing.T) {
	// Without a goal, scenario B relaxes B twice: first via A (cost 5),
	// later via D (cost 4). The cost-5 entry goes stale in the heap.
	res, err := search.Dijkstra(scenarioB(t), "A")
	if err != nil {
		t.Fatal(err)
	}

	seq := visitSequence(res.Steps)
	want := []string{"A", "C", "D", "B"}
	if len(seq) != len(want) {
		t.Fatalf("visit sequence = %v; want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("visit sequence = %v; want %v", seq, want)
		}
	}
	if res.Distances["B"] != 4 {
		t.Errorf("dist[B] = %v; want 4 via A→C→D→B", res.Distances["B"])
	}
	if res.Parents["B"] != "D" {
		t.Errorf("parent[B] = %q; want D after the second relaxation", res.Parents["B"])
	}
}

// ------------------------------------------------------------------------
// 4. Determinism details: equal tentative distances resolve in insertion
//    order, so the first-relaxed parent wins.
// ------------------------------------------------------------------------

func TestDijkstra_EqualDistanceTieBreak(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}
	// Unit diamond: both A→B→D and A→C→D cost 2.
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
	}

	res, err := search.Dijkstra(g, "A", search.WithGoal("D"))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"A", "B", "D"}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Fatalf("path = %v; want %v (B relaxed D first)", res.Path, want)
		}
	}

	seq := visitSequence(res.Steps)
	if seq[1] != "B" || seq[2] != "C" {
		t.Errorf("visit sequence = %v; want B finalized before C", seq)
	}
}

// ------------------------------------------------------------------------
// 5. Goal-less mode: full single-source distance table.
// ------------------------------------------------------------------------

func TestDijkstra_FullTableWithoutGoal(t *testing.T) {
	res, err := search.Dijkstra(scenarioB(t), "A")
	if err != nil {
		t.Fatal(err)
	}

	if res.Found {
		t.Error("found must be false without a goal")
	}
	if len(res.Path) != 0 {
		t.Errorf("path = %v; want empty", res.Path)
	}
	want := map[string]float64{"A": 0, "B": 4, "C": 1, "D": 3}
	for id, d := range want {
		if res.Distances[id] != d {
			t.Errorf("dist[%s] = %v; want %v", id, res.Distances[id], d)
		}
	}
}

func TestDijkstra_DirectedEdges(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		if err := g.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge("A", "C", 5, core.Directed()); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("A", "B", 1, core.Directed()); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("B", "C", 1, core.Directed()); err != nil {
		t.Fatal(err)
	}

	res, err := search.Dijkstra(g, "A", search.WithGoal("C"))
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalCost != 2 {
		t.Errorf("totalCost = %v; want 2 via B", res.TotalCost)
	}

	// C has no outgoing edges: nothing is reachable in reverse.
	back, err := search.Dijkstra(g, "C", search.WithGoal("A"))
	if err != nil {
		t.Fatal(err)
	}
	if back.Found {
		t.Error("C→A must be unreachable on directed edges")
	}
}
