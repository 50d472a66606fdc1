package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/algowalk/steptrace/internal/graphio"
	"github.com/algowalk/steptrace/search"
)

func newRunCmd() *cobra.Command {
	var (
		algorithm string
		start     string
		goal      string
		heuristic string
		showSteps bool
	)

	cmd := &cobra.Command{
		Use:   "run <graph.json>",
		Short: "Run one search over a JSON graph document",
		Long: `Run one search over a graph document and print the outcome.

The document is a JSON object with "nodes" ([{id, label?, x?, y?}]),
"edges" ([{from, to, weight?, directed?}]) and an optional top-level
"directed" flag. Omitted weights default to 1. Node coordinates enable
the manhattan and euclidean heuristics for astar.

Without --goal the weighted algorithms build the full single-source
distance table instead of stopping at a target.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading graph document: %w", err)
			}

			doc, err := graphio.Parse(raw)
			if err != nil {
				return err
			}

			kind, err := search.ParseKind(algorithm)
			if err != nil {
				return err
			}

			heur, err := doc.Heuristic(heuristic)
			if err != nil {
				return err
			}

			graph, err := doc.Build()
			if err != nil {
				return err
			}

			opts := []search.Option{search.WithContext(cmd.Context())}
			if goal != "" {
				opts = append(opts, search.WithGoal(goal))
			}
			if heur != nil {
				opts = append(opts, search.WithHeuristic(heur))
			}

			began := time.Now()
			res, err := search.Run(graph, kind, start, opts...)
			if err != nil {
				return err
			}
			elapsed := time.Since(began)

			if flagFmt == "json" {
				formatJSON(res)
				return nil
			}

			printRunSummary(kind, res, goal != "", elapsed)
			if showSteps && len(res.Steps) > 0 {
				fmt.Println()
				printStepTable(res.Steps)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Algorithm: bfs|dfs|dijkstra|astar")
	cmd.Flags().StringVar(&start, "start", "", "Start node ID")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal node ID")
	cmd.Flags().StringVar(&heuristic, "heuristic", "", "A* heuristic: manhattan|euclidean|zero")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "Print the step-by-step trace")
	_ = cmd.MarkFlagRequired("algorithm")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func printRunSummary(kind search.Kind, res *search.Result, hasGoal bool, elapsed time.Duration) {
	switch {
	case res.Found:
		fmt.Printf("%s: path of cost %s in %s\n", kind, formatCost(res.TotalCost), elapsed.Round(time.Microsecond))
		fmt.Printf("  path:     %s\n", strings.Join(res.Path, " -> "))
		fmt.Printf("  explored: %d nodes over %d steps\n", res.NodesExplored, len(res.Steps))
	case hasGoal:
		fmt.Printf("%s: no path (explored %d nodes over %d steps, %s)\n",
			kind, res.NodesExplored, len(res.Steps), elapsed.Round(time.Microsecond))
	default:
		fmt.Printf("%s: explored %d nodes over %d steps in %s\n",
			kind, res.NodesExplored, len(res.Steps), elapsed.Round(time.Microsecond))
		if len(res.Distances) > 0 {
			fmt.Println()
			printDistanceTable(res)
		}
	}
}

func printStepTable(steps []search.Step) {
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			string(s.Type),
			s.CurrentNode,
			s.Description,
		})
	}
	formatTable([]string{"INDEX", "TYPE", "NODE", "DESCRIPTION"}, rows)
}

func printDistanceTable(res *search.Result) {
	ids := make([]string, 0, len(res.Distances))
	for id := range res.Distances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{id, formatCost(res.Distances[id]), res.Parents[id]})
	}
	formatTable([]string{"NODE", "DISTANCE", "VIA"}, rows)
}
