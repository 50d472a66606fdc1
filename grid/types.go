package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the requested dimensions contain no cells.
	ErrEmptyGrid = errors.New("grid: dimensions must be at least 1x1")
	// ErrOutOfBounds indicates a cell address beyond the playfield.
	ErrOutOfBounds = errors.New("grid: cell outside the grid")
	// ErrBlocked indicates a conflict between an obstacle and a start/goal
	// marker.
	ErrBlocked = errors.New("grid: cell is occupied by an obstacle or marker")
	// ErrBadCellID indicates an identifier that does not parse as "x,y".
	ErrBadCellID = errors.New("grid: malformed cell id")
)

// Connectivity selects the movement model: orthogonal only (Conn4) or
// orthogonal plus diagonal (Conn8).
type Connectivity int

const (
	// Conn4 moves N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal moves.
	Conn8
)

// Cell addresses one grid square.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ID renders the canonical node identifier "x,y" used by Graph().
func (c Cell) ID() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// ParseCellID parses an "x,y" identifier back into a Cell.
func ParseCellID(id string) (Cell, error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	return Cell{X: x, Y: y}, nil
}

// Option tunes a Grid at construction time.
type Option func(*Grid)

// WithDiagonals switches the grid to 8-connectivity.
func WithDiagonals() Option {
	return func(g *Grid) {
		g.conn = Conn8
	}
}
