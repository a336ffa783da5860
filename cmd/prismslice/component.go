package main

import (
	"github.com/spf13/cobra"

	"prismslice/internal/slice"
)

// componentCmd slices on component-text criteria: one or more vertex
// Text strings, matched against the CDG.
func componentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component FILE TEXT...",
		Short: "Slice on one or more component-text criteria",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			g := buildGraphs(prog)
			included, err := slice.ByComponent(g.cverts, g.cadj, args[1:])
			if err != nil {
				return err
			}
			return runSlice(prog, g, included)
		},
	}
	addOutFlag(cmd)
	return cmd
}
