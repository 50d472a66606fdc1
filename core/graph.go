package core

import (
	"fmt"
	"math"
	"sync"
)

// Graph owns a node set and insertion-ordered adjacency lists.
// The zero value is not usable; construct with NewGraph or Build.
type Graph struct {
	mu       sync.RWMutex
	directed bool

	nodes map[string]Node
	order []string // node IDs in insertion order

	adj   map[string][]Arc // per-node adjacency, edge insertion order
	edges []Edge           // every edge once, insertion order
}

// NewGraph returns an empty graph. Edges default to undirected unless
// WithDirected is supplied.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]Node),
		adj:   make(map[string][]Arc),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build constructs a graph from node and edge slices, failing fast on the
// first structural violation. Edge direction follows each Edge's Directed
// flag; graph options apply before any insertion.
func Build(nodes []Node, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, n := range nodes {
		if err := g.AddNode(n.ID, WithLabel(n.Label)); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		var eo []EdgeOption
		if e.Directed {
			eo = append(eo, Directed())
		}
		if err := g.AddEdge(e.From, e.To, e.Weight, eo...); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddNode inserts a node. It fails with ErrEmptyNodeID on a blank ID and
// ErrDuplicateNode if the ID is already present.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	n := Node{ID: id}
	for _, opt := range opts {
		opt(&n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return nil
}

// AddEdge inserts an edge between two existing nodes. Undirected edges (the
// default) appear in both endpoints' adjacency lists; the Directed option
// restricts traversal to From→To. Fails with ErrUnknownNode for a missing
// endpoint, ErrInvalidWeight for a negative or non-finite weight, ErrSelfLoop
// for identical endpoints, and ErrDuplicateEdge when the ordered pair is
// already connected.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	e := Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(&e)
	}

	// 1) Validate weight before touching state.
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrInvalidWeight, from, to, weight)
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must already exist (§fail fast at construction).
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	// 3) One weight per ordered pair.
	if g.hasArcLocked(from, to) {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}
	if !e.Directed && g.hasArcLocked(to, from) {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, to, from)
	}

	// 4) Append adjacency entries; order of insertion is the tie-break
	//    contract every algorithm relies on.
	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: weight})
	if !e.Directed {
		g.adj[to] = append(g.adj[to], Arc{To: from, Weight: weight})
	}
	g.edges = append(g.edges, e)
	return nil
}

func (g *Graph) hasArcLocked(from, to string) bool {
	for _, a := range g.adj[from] {
		if a.To == to {
			return true
		}
	}
	return false
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for id and whether it exists.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeIDs returns every node ID in insertion order.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the IDs adjacent to id, in the order their edges were
// added. The slice is a copy. Fails with ErrUnknownNode.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	arcs := g.adj[id]
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}
	return out, nil
}

// Arcs returns id's adjacency entries (neighbor, weight) in edge insertion
// order. The slice is a copy. Fails with ErrUnknownNode.
func (g *Graph) Arcs(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Arc, len(g.adj[id]))
	copy(out, g.adj[id])
	return out, nil
}

// EdgeWeight returns the weight stored on the edge from→to and true, or
// (0, false) when no such traversable edge exists. Undirected edges answer
// in both directions.
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, a := range g.adj[from] {
		if a.To == to {
			return a.Weight, true
		}
	}
	return 0, false
}

// Edges returns every edge once, in insertion order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Directed reports whether edges default to one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.directed
}
