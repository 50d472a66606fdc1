package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algowalk/steptrace/search"
)

func TestEuclidean(t *testing.T) {
	coords := map[string]search.Point{
		"origin": {X: 0, Y: 0},
		"east":   {X: 3, Y: 0},
		"corner": {X: 3, Y: 4},
	}
	h := search.Euclidean(coords)

	assert.Equal(t, 3.0, h("origin", "east"))
	assert.Equal(t, 5.0, h("origin", "corner"))
	assert.Equal(t, 0.0, h("corner", "corner"))

	assert.Equal(t, 0.0, h("ghost", "corner"), "missing node coords fall back to zero")
	assert.Equal(t, 0.0, h("origin", "ghost"), "missing goal coords fall back to zero")
}

func TestManhattan(t *testing.T) {
	coords := map[string]search.Point{
		"a": {X: 1, Y: 2},
		"b": {X: 4, Y: -2},
	}
	h := search.Manhattan(coords)

	assert.Equal(t, 7.0, h("a", "b"))
	assert.Equal(t, 7.0, h("b", "a"), "symmetric in its arguments")
	assert.Equal(t, 0.0, h("a", "missing"))
}

func TestManhattanDominatesEuclidean(t *testing.T) {
	// On the same coordinates Manhattan is never below Euclidean, which is
	// why it is the sharper (but more fragile) grid heuristic.
	coords := map[string]search.Point{
		"p": {X: 0, Y: 0},
		"q": {X: 5, Y: 7},
	}
	man := search.Manhattan(coords)
	euc := search.Euclidean(coords)
	assert.GreaterOrEqual(t, man("p", "q"), euc("p", "q"))
	assert.InDelta(t, math.Sqrt(74), euc("p", "q"), 1e-12)
}

func TestZeroHeuristic(t *testing.T) {
	assert.Equal(t, 0.0, search.ZeroHeuristic("anything", "anywhere"))
}
