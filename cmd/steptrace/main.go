// Command steptrace runs graph searches from the terminal: one-shot runs
// over JSON graph documents, a built-in maze demo and the algorithm catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

var flagFmt string

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("steptrace version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("steptrace version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "steptrace",
		Short:        "Stepwise graph search with replayable traces",
		Version:      versionString(),
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "table", "Output format: table|json")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newAlgorithmsCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
