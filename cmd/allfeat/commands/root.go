// Package commands implements the CLI commands for allfeat.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/allfeat/internal/adapters/config" //nolint:depguard // Default project file name
	"go.trai.ch/allfeat/internal/app"
	"go.trai.ch/allfeat/internal/build"
	"go.trai.ch/allfeat/internal/core/domain"
)

// RootName is the name of the root command.
const RootName = "allfeat"

// CLI represents the command line interface for allfeat.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath  string
	color       string
	manifestDir string
}

// Application represents the application logic interface.
type Application interface {
	Plan(ctx context.Context, opts app.PlanOptions) (app.Matrix, error)
	Run(ctx context.Context, kind domain.SubcommandKind, opts app.RunOptions) (domain.Summary, error)
}

// FailureError reports that at least one feature combination failed.
// The summary has already been printed when it is returned.
type FailureError struct {
	Failed   int
	ExitCode int
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%d feature combination(s) failed", e.Failed)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           RootName,
		Short:         "Run cargo for every combination of a crate's features",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", config.DefaultFilename,
		"Project file, relative to the manifest directory")
	flags.StringVar(&c.color, "color", "", "Color output: auto, always, or never")
	flags.StringVarP(&c.manifestDir, "manifest-dir", "C", ".", "Directory containing the root Cargo.toml")

	for _, kind := range domain.SubcommandKinds() {
		rootCmd.AddCommand(c.newMatrixCmd(kind))
	}
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) planOptions(cmd *cobra.Command) app.PlanOptions {
	chunks, _ := cmd.Flags().GetInt("n-chunks")
	chunk, _ := cmd.Flags().GetInt("chunk")
	return app.PlanOptions{
		ConfigPath: c.configPath,
		Dir:        c.manifestDir,
		Chunks:     chunks,
		Chunk:      chunk,
	}
}

func addChunkFlags(cmd *cobra.Command) {
	cmd.Flags().Int("n-chunks", 0, "Split the combinations into this many chunks")
	cmd.Flags().Int("chunk", 0, "Run only this chunk (1-based, requires --n-chunks)")
}
