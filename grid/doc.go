// Package grid models a rectangular playfield of free and obstacle cells and
// converts it into a searchable graph.
//
// What
//
//	A Grid is W×H cells addressed (x, y) with x growing rightward and y
//	growing downward. Cells can be marked as obstacles; one start and one
//	goal marker live on the grid (defaults: top-left and bottom-right).
//	Graph() renders the free cells as a core.Graph whose node IDs are "x,y".
//
// Movement
//
//	4-connected by default; WithDiagonals switches to 8-connectivity.
//	Orthogonal moves weigh 1, diagonal moves weigh √2, so edge weights equal
//	geometric distances and the Euclidean heuristic stays admissible.
//
// Determinism
//
//	Graph() emits nodes in row-major order, and each cell's adjacency lists
//	its free neighbors in reading order, the row-major scan of its
//	neighborhood. Searches over two renders of the same grid therefore
//	produce identical traces.
//
// Heuristics
//
//	Euclidean() is admissible under both connectivities. Manhattan() is
//	admissible only on 4-connected grids; under diagonals it overestimates
//	(a √2 step shortens the Manhattan distance by 2) and search.CheckAdmissible
//	will flag it.
//
// Concurrency
//
//	A Grid is not safe for concurrent mutation; callers serialize access.
//	Graphs returned by Graph() are independent snapshots.
//
// Errors
//
//	ErrEmptyGrid    - constructing a grid without at least one cell
//	ErrOutOfBounds  - addressing a cell beyond the playfield
//	ErrBlocked      - placing start/goal on an obstacle or walling them in
//	ErrBadCellID    - parsing a malformed "x,y" identifier
package grid
