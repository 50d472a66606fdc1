package grid

import (
	"fmt"
	"math"

	"github.com/algowalk/steptrace/core"
	"github.com/algowalk/steptrace/search"
)

// Grid is a W×H playfield of free and obstacle cells plus start/goal
// markers. Mutable until rendered; Graph() takes an immutable snapshot.
type Grid struct {
	width, height int
	conn          Connectivity
	blocked       map[Cell]bool
	start, goal   Cell
}

// New constructs a grid of the given dimensions with no obstacles, start at
// the top-left cell and goal at the bottom-right.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	g := &Grid{
		width:   width,
		height:  height,
		conn:    Conn4,
		blocked: make(map[Cell]bool),
		start:   Cell{X: 0, Y: 0},
		goal:    Cell{X: width - 1, Y: height - 1},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Width reports the horizontal cell count.
func (g *Grid) Width() int { return g.width }

// Height reports the vertical cell count.
func (g *Grid) Height() int { return g.height }

// Conn reports the movement model.
func (g *Grid) Conn() Connectivity { return g.conn }

// Start returns the start marker.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal marker.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether (x, y) lies on the playfield.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsObstacle reports whether (x, y) is blocked. Out-of-bounds cells read as
// free; use InBounds to distinguish.
func (g *Grid) IsObstacle(x, y int) bool {
	return g.blocked[Cell{X: x, Y: y}]
}

// SetObstacle blocks the cell at (x, y). Blocking the start or goal marker
// is refused with ErrBlocked.
func (g *Grid) SetObstacle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	c := Cell{X: x, Y: y}
	if c == g.start || c == g.goal {
		return fmt.Errorf("%w: (%d,%d) carries a marker", ErrBlocked, x, y)
	}
	g.blocked[c] = true
	return nil
}

// ClearObstacle frees the cell at (x, y). Clearing a free cell is a no-op.
func (g *Grid) ClearObstacle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	delete(g.blocked, Cell{X: x, Y: y})
	return nil
}

// SetStart moves the start marker. The target must be in bounds and free.
func (g *Grid) SetStart(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	c := Cell{X: x, Y: y}
	if g.blocked[c] {
		return fmt.Errorf("%w: (%d,%d)", ErrBlocked, x, y)
	}
	g.start = c
	return nil
}

// SetGoal moves the goal marker. The target must be in bounds and free.
func (g *Grid) SetGoal(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	c := Cell{X: x, Y: y}
	if g.blocked[c] {
		return fmt.Errorf("%w: (%d,%d)", ErrBlocked, x, y)
	}
	g.goal = c
	return nil
}

// Obstacles lists the blocked cells in row-major order.
func (g *Grid) Obstacles() []Cell {
	out := make([]Cell, 0, len(g.blocked))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if c := (Cell{X: x, Y: y}); g.blocked[c] {
				out = append(out, c)
			}
		}
	}
	return out
}

// FreeCount reports the number of unblocked cells.
func (g *Grid) FreeCount() int {
	return g.width*g.height - len(g.blocked)
}

// forwardOffsets lists, per connectivity, the neighbor offsets a cell emits
// edges toward during a row-major scan. Restricting emission to cells not
// yet scanned adds every edge exactly once, and the reverse arcs recorded by
// core land so that each node's final adjacency reads its neighborhood in
// row-major order.
func (g *Grid) forwardOffsets() [][2]int {
	if g.conn == Conn8 {
		return [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}} // E, SW, S, SE
	}
	return [][2]int{{1, 0}, {0, 1}} // E, S
}

// Graph renders the free cells as an undirected core.Graph: node IDs "x,y",
// orthogonal edges weigh 1, diagonal edges weigh math.Sqrt2.
func (g *Grid) Graph() (*core.Graph, error) {
	cg := core.NewGraph()

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if g.blocked[c] {
				continue
			}
			if err := cg.AddNode(c.ID()); err != nil {
				return nil, fmt.Errorf("grid: node %s: %w", c.ID(), err)
			}
		}
	}

	offsets := g.forwardOffsets()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			from := Cell{X: x, Y: y}
			if g.blocked[from] {
				continue
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				to := Cell{X: nx, Y: ny}
				if !g.InBounds(nx, ny) || g.blocked[to] {
					continue
				}
				w := 1.0
				if d[0] != 0 && d[1] != 0 {
					w = math.Sqrt2
				}
				if err := cg.AddEdge(from.ID(), to.ID(), w); err != nil {
					return nil, fmt.Errorf("grid: edge %s-%s: %w", from.ID(), to.ID(), err)
				}
			}
		}
	}
	return cg, nil
}

// Coordinates returns the id→point table for the free cells, feeding the
// geometric heuristics.
func (g *Grid) Coordinates() map[string]search.Point {
	coords := make(map[string]search.Point, g.FreeCount())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if g.blocked[c] {
				continue
			}
			coords[c.ID()] = search.Point{X: float64(x), Y: float64(y)}
		}
	}
	return coords
}

// Euclidean returns the straight-line heuristic over the grid coordinates.
// Admissible under both connectivities.
func (g *Grid) Euclidean() search.Heuristic {
	return search.Euclidean(g.Coordinates())
}

// Manhattan returns the |dx|+|dy| heuristic over the grid coordinates.
// Admissible on 4-connected grids only; see the package comment.
func (g *Grid) Manhattan() search.Heuristic {
	return search.Manhattan(g.Coordinates())
}
