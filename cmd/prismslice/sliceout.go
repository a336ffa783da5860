package main

import (
	"os"

	"github.com/spf13/cobra"

	"prismslice/internal/applog"
	"prismslice/internal/clierr"
	"prismslice/internal/emit"
	"prismslice/internal/model"
	"prismslice/internal/slice"
)

// outFlag is shared by every slicing subcommand (component, var, module).
var outFlag string

func addOutFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outFlag, "out", "slice.prism", "output file for the reconstructed slice")
}

// runSlice is the common tail of the component/var/module subcommands:
// prune dead commands, emit, and log a summary.
func runSlice(prog *model.Program, g *graphs, included slice.Set) error {
	slice.PruneDeadCommands(prog, g.cverts, included)

	f, err := os.Create(outFlag)
	if err != nil {
		return clierr.Wrap(clierr.IoError, err, "creating %s", outFlag)
	}
	defer f.Close()

	if err := emit.Emit(f, prog, g.cverts, included); err != nil {
		return err
	}

	applog.Info("wrote slice", "out", outFlag, "vertices", len(included), "of", len(g.cverts))
	return nil
}
