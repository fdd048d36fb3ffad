package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/allfeat/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, date: %s)\n",
				RootName, build.Version, build.Commit, build.Date)
		},
	}
}
