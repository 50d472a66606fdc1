package search

import "math"

// Heuristic estimates the remaining cost from node to goal. A* optimality
// requires admissibility: the estimate must never exceed the true remaining
// cost. Estimates must also be deterministic for traces to be reproducible.
type Heuristic func(node, goal string) float64

// ZeroHeuristic estimates zero everywhere, reducing A* to Dijkstra.
func ZeroHeuristic(_, _ string) float64 { return 0 }

// Point is a 2-D coordinate used by the geometric heuristics.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Euclidean builds a straight-line-distance heuristic over a coordinate
// table. It is admissible whenever every edge weight is at least the
// geometric distance between its endpoints. Nodes without coordinates
// estimate zero, which keeps the heuristic admissible.
func Euclidean(coords map[string]Point) Heuristic {
	return func(node, goal string) float64 {
		a, aok := coords[node]
		b, bok := coords[goal]
		if !aok || !bok {
			return 0
		}
		return math.Hypot(b.X-a.X, b.Y-a.Y)
	}
}

// Manhattan builds an |dx|+|dy| heuristic over a coordinate table.
// Admissible on 4-connected unit grids; overestimates when diagonal moves
// exist, so prefer Euclidean there. Nodes without coordinates estimate zero.
func Manhattan(coords map[string]Point) Heuristic {
	return func(node, goal string) float64 {
		a, aok := coords[node]
		b, bok := coords[goal]
		if !aok || !bok {
			return 0
		}
		return math.Abs(b.X-a.X) + math.Abs(b.Y-a.Y)
	}
}
