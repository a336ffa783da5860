package main

import (
	"github.com/spf13/cobra"

	"prismslice/internal/slice"
)

// varCmd slices on variable-name criteria, each resolved to its unique
// defining declaration vertex.
func varCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "var FILE NAME...",
		Short: "Slice on one or more variable-name criteria",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			g := buildGraphs(prog)
			included, err := slice.ByVariable(g.cverts, g.cadj, args[1:])
			if err != nil {
				return err
			}
			return runSlice(prog, g, included)
		},
	}
	addOutFlag(cmd)
	return cmd
}
