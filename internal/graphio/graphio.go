// Package graphio parses the JSON graph documents shared by the REST API and
// the CLI: a flat node list, optionally with coordinates, plus an edge list.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/search"
)

// ErrUnknownHeuristic reports a heuristic name outside zero, manhattan and
// euclidean.
var ErrUnknownHeuristic = errors.New("graphio: unknown heuristic name")

// Node is one vertex of a graph document. X and Y are optional coordinates
// enabling the geometric heuristics.
type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label,omitempty"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
}

// Edge is one edge of a graph document. A nil weight defaults to 1 so
// unweighted graphs can omit weights entirely.
type Edge struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Weight   *float64 `json:"weight,omitempty"`
	Directed bool     `json:"directed,omitempty"`
}

// Document is a complete JSON graph description.
type Document struct {
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
	Directed bool   `json:"directed,omitempty"`
}

// Parse decodes a JSON graph document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphio: parse document: %w", err)
	}

	return &doc, nil
}

// Build assembles the document into a graph, surfacing the usual construction
// sentinels (duplicate nodes, unknown endpoints, negative weights).
func (d *Document) Build() (*core.Graph, error) {
	nodes := make([]core.Node, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		nodes = append(nodes, core.Node{ID: n.ID, Label: n.Label})
	}

	edges := make([]core.Edge, 0, len(d.Edges))
	for _, e := range d.Edges {
		weight := 1.0
		if e.Weight != nil {
			weight = *e.Weight
		}
		edges = append(edges, core.Edge{From: e.From, To: e.To, Weight: weight, Directed: e.Directed})
	}

	var opts []core.GraphOption
	if d.Directed {
		opts = append(opts, core.WithDirected())
	}

	return core.Build(nodes, edges, opts...)
}

// Coordinates collects the nodes carrying both coordinates.
func (d *Document) Coordinates() map[string]search.Point {
	coords := make(map[string]search.Point, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.X != nil && n.Y != nil {
			coords[n.ID] = search.Point{X: *n.X, Y: *n.Y}
		}
	}

	return coords
}

// Heuristic resolves a heuristic name over the document's coordinates. The
// empty name and "zero" both mean no estimate. Nodes without coordinates
// estimate zero, which keeps the heuristic admissible-by-omission.
func (d *Document) Heuristic(name string) (search.Heuristic, error) {
	switch name {
	case "", "zero":
		return nil, nil
	case "manhattan":
		return search.Manhattan(d.Coordinates()), nil
	case "euclidean":
		return search.Euclidean(d.Coordinates()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}
