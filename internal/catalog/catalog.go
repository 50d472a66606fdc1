// Package catalog describes the available search algorithms for UI dropdowns
// and CLI listings.
package catalog

import "github.com/algowalk/steptrace/search"

// Entry is the presentation metadata for one algorithm.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Weighted    bool     `json:"weighted"`
	Optimal     bool     `json:"optimal"`
	Complete    bool     `json:"complete"`
	Heuristics  []string `json:"heuristics"`
}

var entries = []Entry{
	{
		ID:          search.KindBFS.String(),
		Name:        "Breadth-First Search",
		Description: "Explores nodes level by level; guarantees a fewest-edge path",
		Weighted:    false,
		Optimal:     true,
		Complete:    true,
		Heuristics:  []string{},
	},
	{
		ID:          search.KindDFS.String(),
		Name:        "Depth-First Search",
		Description: "Dives along one branch before backtracking; finds a path, not the shortest",
		Weighted:    false,
		Optimal:     false,
		Complete:    true,
		Heuristics:  []string{},
	},
	{
		ID:          search.KindDijkstra.String(),
		Name:        "Dijkstra's Algorithm",
		Description: "Optimal pathfinding by always expanding the cheapest frontier node",
		Weighted:    true,
		Optimal:     true,
		Complete:    true,
		Heuristics:  []string{},
	},
	{
		ID:          search.KindAStar.String(),
		Name:        "A* Search",
		Description: "Optimal pathfinding using an admissible heuristic to guide the search",
		Weighted:    true,
		Optimal:     true,
		Complete:    true,
		Heuristics:  []string{"manhattan", "euclidean"},
	},
}

// Entries returns the catalog in canonical algorithm order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}

// Lookup returns the entry describing the given kind.
func Lookup(k search.Kind) (Entry, bool) {
	for _, e := range entries {
		if e.ID == k.String() {
			return e, true
		}
	}

	return Entry{}, false
}
