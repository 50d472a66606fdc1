package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/algowalk/steptrace/internal/catalog"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			entries := catalog.Entries()
			if flagFmt == "json" {
				formatJSON(entries)
				return
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.ID,
					e.Name,
					strconv.FormatBool(e.Weighted),
					strconv.FormatBool(e.Optimal),
					strconv.FormatBool(e.Complete),
					strings.Join(e.Heuristics, ","),
				})
			}
			formatTable([]string{"ID", "NAME", "WEIGHTED", "OPTIMAL", "COMPLETE", "HEURISTICS"}, rows)
		},
	}
}
