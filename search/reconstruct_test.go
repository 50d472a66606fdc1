package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/steptrace/search"
)

func TestReconstructPath(t *testing.T) {
	t.Run("start equals goal", func(t *testing.T) {
		path, err := search.ReconstructPath(nil, "A", "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, path)
	})

	t.Run("chain", func(t *testing.T) {
		parents := map[string]string{"B": "A", "C": "B", "D": "C"}
		path, err := search.ReconstructPath(parents, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, path)
	})

	t.Run("goal without parent entry", func(t *testing.T) {
		parents := map[string]string{"B": "A"}
		_, err := search.ReconstructPath(parents, "A", "D")
		assert.ErrorIs(t, err, search.ErrNoPath)
	})

	t.Run("cyclic parents terminate", func(t *testing.T) {
		// A corrupted map must fail cleanly instead of walking forever.
		parents := map[string]string{"B": "C", "C": "B"}
		_, err := search.ReconstructPath(parents, "A", "B")
		assert.ErrorIs(t, err, search.ErrNoPath)
	})
}

func TestPathCost(t *testing.T) {
	g := scenarioA(t)

	t.Run("chain total", func(t *testing.T) {
		cost, err := search.PathCost(g, []string{"A", "B", "C", "D"})
		require.NoError(t, err)
		assert.Equal(t, 6.0, cost)
	})

	t.Run("missing edge", func(t *testing.T) {
		_, err := search.PathCost(g, []string{"A", "C"})
		assert.ErrorIs(t, err, search.ErrBrokenPath)
	})

	t.Run("trivial paths cost nothing", func(t *testing.T) {
		cost, err := search.PathCost(g, nil)
		require.NoError(t, err)
		assert.Zero(t, cost)

		cost, err = search.PathCost(g, []string{"A"})
		require.NoError(t, err)
		assert.Zero(t, cost)
	})

	t.Run("nil graph", func(t *testing.T) {
		_, err := search.PathCost(nil, []string{"A", "B"})
		assert.ErrorIs(t, err, search.ErrNilGraph)
	})
}

// TestReconstructFromRunArtifacts checks that the parent map a run returns is
// sufficient to rebuild exactly the path the run reported.
func TestReconstructFromRunArtifacts(t *testing.T) {
	g := scenarioB(t)

	res, err := search.Dijkstra(g, "A", search.WithGoal("D"))
	require.NoError(t, err)
	require.True(t, res.Found)

	path, err := search.ReconstructPath(res.Parents, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, res.Path, path)

	cost, err := search.PathCost(g, path)
	require.NoError(t, err)
	assert.Equal(t, res.TotalCost, cost)
}

// TestPathCostOfUnweightedSearch re-prices a BFS path by edge weight: BFS
// reports hop count as its cost, so the weighted total diverges on purpose.
func TestPathCostOfUnweightedSearch(t *testing.T) {
	g := scenarioA(t)

	res, err := search.BFS(g, "A", search.WithGoal("D"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.TotalCost, "BFS cost counts edges")

	cost, err := search.PathCost(g, res.Path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cost, "the same path priced by weight")
}
