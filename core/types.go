package core

import "errors"

// Sentinel errors reported during graph construction. Structural problems are
// surfaced synchronously and are not recoverable; compare with errors.Is.
var (
	// ErrEmptyNodeID indicates a blank node identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID that is
	// already present in the graph.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownNode indicates an operation referenced a node ID that does
	// not exist in the graph.
	ErrUnknownNode = errors.New("core: node not found")

	// ErrInvalidWeight indicates an edge weight that is negative, NaN or
	// infinite. Shortest-path algorithms require finite non-negative weights.
	ErrInvalidWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loops are not supported")

	// ErrDuplicateEdge indicates a second edge between the same ordered pair
	// of nodes; one weight per pair keeps EdgeWeight unambiguous.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Node is a graph vertex: a unique identifier plus an optional display label.
// It carries no behavior.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// Edge connects two nodes with a non-negative weight. Undirected edges
// (the default) are traversable in both directions and share one weight.
type Edge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Weight   float64 `json:"weight"`
	Directed bool    `json:"directed,omitempty"`
}

// Arc is one adjacency entry: the neighbor reached from a node and the weight
// of the connecting edge. Arcs preserve edge insertion order.
type Arc struct {
	To     string
	Weight float64
}

// NodeOption customizes a node at insertion time.
type NodeOption func(*Node)

// WithLabel sets the node's display label.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// EdgeOption customizes an edge at insertion time.
type EdgeOption func(*Edge)

// Directed makes the edge one-way, traversable only From→To.
func Directed() EdgeOption {
	return func(e *Edge) { e.Directed = true }
}

// GraphOption customizes a graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes every edge one-way by default; individual edges cannot
// opt back out. The zero default is undirected.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}
