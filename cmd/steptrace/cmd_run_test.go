package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/algowalk/steptrace/search"
)

// executeArgs runs the root command with args, suppressing cobra's own
// usage/error output so test logs stay clean.
func executeArgs(t *testing.T, root *cobra.Command, args ...string) error {
	t.Helper()
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)
	_, err := root.ExecuteC()
	return err
}

// writeGraph drops a graph document into a temp dir and returns its path.
func writeGraph(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write graph: %v", err)
	}
	return path
}

const forkGraph = `{
	"nodes": [{"id": "A"}, {"id": "B"}, {"id": "C"}, {"id": "D"}],
	"edges": [
		{"from": "A", "to": "B", "weight": 1},
		{"from": "B", "to": "D", "weight": 5},
		{"from": "A", "to": "C", "weight": 1},
		{"from": "C", "to": "D", "weight": 1}
	]
}`

func TestRunCommand_Dijkstra(t *testing.T) {
	path := writeGraph(t, forkGraph)

	var err error
	out := captureStdout(t, func() {
		err = executeArgs(t, newRootCmd(), "run", path,
			"--algorithm", "dijkstra", "--start", "A", "--goal", "D", "--format", "json")
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var res search.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not a result: %v\noutput: %s", err, out)
	}
	if !res.Found {
		t.Fatal("expected a path")
	}
	if want := []string{"A", "C", "D"}; !equalPath(res.Path, want) {
		t.Errorf("path = %v, want %v", res.Path, want)
	}
	if res.TotalCost != 2 {
		t.Errorf("cost = %v, want 2", res.TotalCost)
	}
	if len(res.Steps) != res.NodesExplored+1 {
		t.Errorf("steps = %d, explored = %d; want steps = explored+1", len(res.Steps), res.NodesExplored)
	}
}

func TestRunCommand_TableSummary(t *testing.T) {
	path := writeGraph(t, forkGraph)

	var err error
	out := captureStdout(t, func() {
		err = executeArgs(t, newRootCmd(), "run", path,
			"--algorithm", "bfs", "--start", "A", "--goal", "D", "--steps")
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out, "A -> B -> D") && !strings.Contains(out, "A -> C -> D") {
		t.Errorf("summary missing a two-hop path:\n%s", out)
	}
	for _, col := range []string{"INDEX", "TYPE", "NODE", "DESCRIPTION"} {
		if !strings.Contains(out, col) {
			t.Errorf("step table missing column %s:\n%s", col, out)
		}
	}
}

func TestRunCommand_DistanceTableWithoutGoal(t *testing.T) {
	path := writeGraph(t, forkGraph)

	var err error
	out := captureStdout(t, func() {
		err = executeArgs(t, newRootCmd(), "run", path,
			"--algorithm", "dijkstra", "--start", "A")
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, col := range []string{"NODE", "DISTANCE", "VIA"} {
		if !strings.Contains(out, col) {
			t.Errorf("distance table missing column %s:\n%s", col, out)
		}
	}

	// The settled table must show D at cost 2 via C.
	var foundRow bool
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 3 && fields[0] == "D" {
			foundRow = true
			if fields[1] != "2" || fields[2] != "C" {
				t.Errorf("row for D = %v, want [D 2 C]", fields)
			}
		}
	}
	if !foundRow {
		t.Errorf("distance table missing a row for D:\n%s", out)
	}
}

func TestRunCommand_Errors(t *testing.T) {
	path := writeGraph(t, forkGraph)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"run", filepath.Join(t.TempDir(), "absent.json"),
			"--algorithm", "bfs", "--start", "A"}},
		{"missing required flags", []string{"run", path}},
		{"unknown algorithm", []string{"run", path, "--algorithm", "idfs", "--start", "A"}},
		{"unknown heuristic", []string{"run", path,
			"--algorithm", "astar", "--start", "A", "--goal", "D", "--heuristic", "psychic"}},
		{"start not in graph", []string{"run", path, "--algorithm", "bfs", "--start", "Z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := executeArgs(t, newRootCmd(), tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func equalPath(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
