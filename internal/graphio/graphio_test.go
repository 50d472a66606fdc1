package graphio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/internal/graphio"
)

func fp(v float64) *float64 { return &v }

func TestParse(t *testing.T) {
	doc, err := graphio.Parse([]byte(`{
		"nodes": [{"id": "a", "x": 0, "y": 0}, {"id": "b", "label": "Bravo"}],
		"edges": [{"from": "a", "to": "b", "weight": 2.5}],
		"directed": true
	}`))
	require.NoError(t, err)

	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "Bravo", doc.Nodes[1].Label)
	require.Len(t, doc.Edges, 1)
	require.NotNil(t, doc.Edges[0].Weight)
	assert.Equal(t, 2.5, *doc.Edges[0].Weight)
	assert.True(t, doc.Directed)

	_, err = graphio.Parse([]byte(`{"nodes": [`))
	assert.Error(t, err)
}

func TestBuild_DefaultsOmittedWeightsToOne(t *testing.T) {
	doc := &graphio.Document{
		Nodes: []graphio.Node{{ID: "a"}, {ID: "b"}},
		Edges: []graphio.Edge{{From: "a", To: "b"}},
	}

	g, err := doc.Build()
	require.NoError(t, err)

	w, ok := g.EdgeWeight("a", "b")
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
}

func TestBuild_PropagatesGraphSentinels(t *testing.T) {
	doc := &graphio.Document{
		Nodes: []graphio.Node{{ID: "a"}, {ID: "a"}},
	}

	_, err := doc.Build()
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestCoordinates_SkipsNodesMissingAnAxis(t *testing.T) {
	doc := &graphio.Document{
		Nodes: []graphio.Node{
			{ID: "a", X: fp(1), Y: fp(2)},
			{ID: "b", X: fp(3)},
			{ID: "c"},
		},
	}

	coords := doc.Coordinates()
	require.Len(t, coords, 1)
	assert.Equal(t, 1.0, coords["a"].X)
	assert.Equal(t, 2.0, coords["a"].Y)
}

func TestHeuristic(t *testing.T) {
	doc := &graphio.Document{
		Nodes: []graphio.Node{
			{ID: "a", X: fp(0), Y: fp(0)},
			{ID: "b", X: fp(3), Y: fp(4)},
		},
	}

	for _, name := range []string{"", "zero"} {
		h, err := doc.Heuristic(name)
		require.NoError(t, err)
		assert.Nil(t, h)
	}

	h, err := doc.Heuristic("manhattan")
	require.NoError(t, err)
	assert.Equal(t, 7.0, h("a", "b"))

	h, err = doc.Heuristic("euclidean")
	require.NoError(t, err)
	assert.Equal(t, 5.0, h("a", "b"))

	_, err = doc.Heuristic("teleport")
	assert.ErrorIs(t, err, graphio.ErrUnknownHeuristic)
}
