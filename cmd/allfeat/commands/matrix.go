package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/allfeat/internal/app"
	"go.trai.ch/allfeat/internal/core/domain"
)

func (c *CLI) newMatrixCmd(kind domain.SubcommandKind) *cobra.Command {
	aliases := []string{kind.Name()}
	if kind.String() != kind.Name() {
		aliases = append(aliases, kind.String())
	}

	cmd := &cobra.Command{
		Use:     kind.Alias() + " [flags] [-- cargo args... [-- " + kind.Name() + " args...]]",
		Aliases: aliases,
		Short:   fmt.Sprintf("Run cargo %s for every feature combination", kind.Name()),
		Long: fmt.Sprintf("Run cargo %s for every feature combination.\n\n"+
			"Cargo flags must follow \"--\", e.g. %s -- --release", kind.Name(), kind.Alias()),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			lintArgs, _ := cmd.Flags().GetStringArray("lint-arg")

			summary, err := c.app.Run(cmd.Context(), kind, app.RunOptions{
				PlanOptions: c.planOptions(cmd),
				KeepGoing:   keepGoing,
				Color:       c.color,
				Args:        args,
				LintArgs:    lintArgs,
			})
			if err != nil {
				return err
			}
			if summary.Failed() {
				return &FailureError{Failed: len(summary.Failures()), ExitCode: summary.ExitCode()}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("keep-going", "k", false, "Continue with the next combination after a failure")
	cmd.Flags().StringArray("lint-arg", nil, "Argument passed after the second \"--\" (repeatable)")
	addChunkFlags(cmd)
	return cmd
}
