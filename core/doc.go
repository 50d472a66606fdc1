// Package core defines the graph model every steptrace algorithm runs on:
// nodes with optional display labels, non-negative weighted edges (undirected
// by default), and insertion-ordered adjacency.
//
// What:
//
//	A Graph owns its node set and adjacency lists. It is pure data plus
//	deterministic accessors; algorithms never mutate it.
//
// Why insertion order:
//
//	Neighbors(id) returns adjacent node IDs in the exact order their edges
//	were added. Every search algorithm in this module breaks ties by that
//	order, which is what makes recorded traces reproducible run after run.
//	There is no sorting anywhere: the caller's construction order is the
//	contract.
//
// Construction errors (sentinel, fail fast):
//
//	ErrEmptyNodeID   – blank node ID.
//	ErrDuplicateNode – AddNode with an ID already present.
//	ErrUnknownNode   – AddEdge referencing a missing endpoint.
//	ErrInvalidWeight – negative, NaN or infinite edge weight.
//	ErrSelfLoop      – AddEdge with identical endpoints.
//	ErrDuplicateEdge – a second edge between the same ordered pair.
//
// Concurrency:
//
//	All methods are safe for concurrent use via an internal RWMutex. A graph
//	that is no longer being mutated may be shared freely by concurrent
//	read-only searches.
//
// Usage:
//
//	g := core.NewGraph()
//	_ = g.AddNode("A")
//	_ = g.AddNode("B", core.WithLabel("Goal"))
//	_ = g.AddEdge("A", "B", 2.5)
//	ids, _ := g.Neighbors("A") // ["B"]
package core
