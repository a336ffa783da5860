package main

import (
	"github.com/spf13/cobra"

	"prismslice/internal/slice"
)

// moduleCmd slices on module-name criteria: MDG reachability lifted to
// the union of every CDG vertex belonging to a reachable module.
func moduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module FILE MODULE...",
		Short: "Slice on one or more module-name criteria",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			g := buildGraphs(prog)
			included, err := slice.ByModule(g.cverts, g.cadj, g.mverts, g.madj, args[1:])
			if err != nil {
				return err
			}
			return runSlice(prog, g, included)
		},
	}
	addOutFlag(cmd)
	return cmd
}
