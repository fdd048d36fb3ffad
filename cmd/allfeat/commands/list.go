package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the planned feature combinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.app.Plan(cmd.Context(), c.planOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, set := range m.Sets {
				if _, err := fmt.Fprintf(out, "crate=%s features=%s\n", set.Crate.Name, set.Features); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addChunkFlags(cmd)
	return cmd
}
