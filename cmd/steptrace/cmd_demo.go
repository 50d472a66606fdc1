package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/algowalk/steptrace/grid"
	"github.com/algowalk/steptrace/search"
)

// The demo maze: a vertical wall with a gap near the top, an L-shaped pocket
// on the right and a few scattered blocks between start and goal.
const (
	demoWidth  = 10
	demoHeight = 8
)

var demoObstacles = [][2]int{
	{4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6},
	{6, 1}, {6, 2}, {7, 2},
	{2, 4}, {8, 3}, {3, 6},
}

func demoGrid() (*grid.Grid, error) {
	g, err := grid.New(demoWidth, demoHeight)
	if err != nil {
		return nil, err
	}
	if err := g.SetStart(1, 1); err != nil {
		return nil, err
	}
	if err := g.SetGoal(8, 6); err != nil {
		return nil, err
	}
	for _, c := range demoObstacles {
		if err := g.SetObstacle(c[0], c[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// demoRow is one algorithm's outcome on the demo maze.
type demoRow struct {
	Algorithm     string   `json:"algorithm"`
	Found         bool     `json:"found"`
	TotalCost     float64  `json:"totalCost"`
	NodesExplored int      `json:"nodesExplored"`
	Steps         int      `json:"steps"`
	Path          []string `json:"path"`
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Race every algorithm through the built-in maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := demoGrid()
			if err != nil {
				return err
			}

			graph, err := g.Graph()
			if err != nil {
				return err
			}
			start := g.Start().ID()
			goal := g.Goal().ID()

			rows := make([]demoRow, 0, len(search.Kinds()))
			for _, kind := range search.Kinds() {
				opts := []search.Option{
					search.WithGoal(goal),
					search.WithContext(cmd.Context()),
				}
				if kind == search.KindAStar {
					opts = append(opts, search.WithHeuristic(g.Manhattan()))
				}

				res, err := search.Run(graph, kind, start, opts...)
				if err != nil {
					return err
				}

				rows = append(rows, demoRow{
					Algorithm:     kind.String(),
					Found:         res.Found,
					TotalCost:     res.TotalCost,
					NodesExplored: res.NodesExplored,
					Steps:         len(res.Steps),
					Path:          res.Path,
				})

				if flagFmt != "json" {
					fmt.Printf("--- %s ---\n", strings.ToUpper(kind.String()))
					fmt.Print(renderMaze(g, res.Path))
					fmt.Printf("cost %s, %d nodes explored, %d steps\n\n",
						formatCost(res.TotalCost), res.NodesExplored, len(res.Steps))
				}
			}

			if flagFmt == "json" {
				formatJSON(rows)
				return nil
			}

			printDemoTable(rows)
			return nil
		},
	}
}

// renderMaze draws the grid row by row: S start, G goal, # obstacle, * path.
func renderMaze(g *grid.Grid, path []string) string {
	onPath := make(map[string]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := grid.Cell{X: x, Y: y}
			switch {
			case cell == g.Start():
				b.WriteByte('S')
			case cell == g.Goal():
				b.WriteByte('G')
			case g.IsObstacle(x, y):
				b.WriteByte('#')
			case onPath[cell.ID()]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
			if x < g.Width()-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func printDemoTable(rows []demoRow) {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		cost := "-"
		if r.Found {
			cost = formatCost(r.TotalCost)
		}
		table = append(table, []string{
			r.Algorithm,
			strconv.FormatBool(r.Found),
			cost,
			strconv.Itoa(r.NodesExplored),
			strconv.Itoa(r.Steps),
		})
	}
	formatTable([]string{"ALGORITHM", "FOUND", "COST", "EXPLORED", "STEPS"}, table)
}
