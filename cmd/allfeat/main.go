// Package main is the entry point for the allfeat cargo wrapper.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/allfeat/cmd/allfeat/commands"
	"go.trai.ch/allfeat/internal/app"
	"go.trai.ch/allfeat/internal/core/domain"
	_ "go.trai.ch/allfeat/internal/wiring"
)

// Exit codes returned by allfeat. A failed combination exits with the
// build tool's own code instead.
const (
	// ExitSuccess indicates every combination passed.
	ExitSuccess = 0
	// ExitFailure indicates a runtime failure.
	ExitFailure = 1
	// ExitConfigError indicates an invalid project file, manifest or flag.
	ExitConfigError = 2
	// ExitEnvError indicates the build tool could not be started.
	ExitEnvError = 3
)

// pluginPrefix is the prefix cargo uses to find external subcommands.
const pluginPrefix = "cargo-"

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	args := normalizeArgs(os.Args[0], os.Args[1:])
	os.Exit(run(context.Background(), args, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return ExitFailure
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	err = cli.Execute(ctx)
	if err == nil {
		return ExitSuccess
	}

	var failure *commands.FailureError
	if errors.As(err, &failure) {
		return failure.ExitCode
	}

	components.Logger.Error(err)
	switch {
	case errors.Is(err, domain.ErrInvalidConfiguration), errors.Is(err, domain.ErrInvalidChunk):
		return ExitConfigError
	case errors.Is(err, domain.ErrSpawnFailed):
		return ExitEnvError
	default:
		return ExitFailure
	}
}

// normalizeArgs supports running as a cargo plugin named cargo-<subcommand>.
// The subcommand is implied by the binary name, and cargo passes it again as
// the first argument, which is accepted as well.
func normalizeArgs(argv0 string, args []string) []string {
	name := strings.TrimSuffix(filepath.Base(argv0), ".exe")
	sub, ok := strings.CutPrefix(name, pluginPrefix)
	if !ok {
		return args
	}

	if sub == commands.RootName {
		if len(args) > 0 && args[0] == sub {
			return args[1:]
		}
		return args
	}

	if _, err := domain.ParseSubcommandKind(sub); err != nil {
		return args
	}
	if len(args) > 0 && args[0] == sub {
		return args
	}
	return append([]string{sub}, args...)
}
