package grid_test

import (
	"fmt"

	"github.com/algowalk/steptrace/grid"
	"github.com/algowalk/steptrace/search"
)

// ExampleGrid routes around a blocked center cell.
func ExampleGrid() {
	g, _ := grid.New(3, 3)
	_ = g.SetObstacle(1, 1)

	cg, _ := g.Graph()
	res, _ := search.BFS(cg, g.Start().ID(), search.WithGoal(g.Goal().ID()))
	fmt.Println(res.Path, res.TotalCost)

	// Output: [0,0 1,0 2,0 2,1 2,2] 4
}

// ExampleGrid_diagonals shows the √2-weighted diagonal shortcut under
// 8-connectivity, guided by the euclidean heuristic.
func ExampleGrid_diagonals() {
	g, _ := grid.New(3, 3, grid.WithDiagonals())

	cg, _ := g.Graph()
	res, _ := search.AStar(cg, "0,0",
		search.WithGoal("2,2"),
		search.WithHeuristic(g.Euclidean()))
	fmt.Println(res.Path)
	fmt.Printf("%.3f\n", res.TotalCost)

	// Output:
	// [0,0 1,1 2,2]
	// 2.828
}
