// Command prismslice is the driver for the dependence-graph slicer: it
// parses a PRISM-like model, builds its MDG/CDG, resolves a slicing
// criterion, runs forward-reachability slicing and the dead-command
// prune, and writes the reconstructed source — or, in bench mode, prints
// reachability statistics instead of slicing at all.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prismslice/internal/applog"
	"prismslice/internal/clierr"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:           "prismslice",
		Short:         "Dependence-graph slicer for PRISM-like probabilistic models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applog.Init(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")

	root.AddCommand(
		parseCmd(),
		componentCmd(),
		varCmd(),
		moduleCmd(),
		benchCmd(),
	)

	if err := root.Execute(); err != nil {
		reportAndExit(err)
	}
}

// reportAndExit prints err to stderr, using its clierr.Kind as a message
// prefix when available, and exits 1. Nothing past this call runs — the
// driver is fail-fast, per the error-handling policy.
func reportAndExit(err error) {
	var ce *clierr.Error
	if e, ok := err.(*clierr.Error); ok {
		ce = e
	}
	if ce != nil {
		fmt.Fprintf(os.Stderr, "prismslice: %s\n", ce.Error())
	} else {
		fmt.Fprintf(os.Stderr, "prismslice: %v\n", err)
	}
	os.Exit(1)
}
