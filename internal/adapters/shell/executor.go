// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports"
	"go.trai.ch/zerr"
)

// interruptGrace is how long an interrupted child may take to exit before it is killed.
const interruptGrace = 10 * time.Second

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor whose children inherit the process's
// standard output and error.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects the child's standard streams. Passing *os.File values
// hands the descriptors to the child directly, so nothing is buffered here.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Execute runs the invocation in its working directory and blocks until it exits.
//
// A cancelled context interrupts the child with os.Interrupt so its own
// signal handling runs. It is killed only if it outlives interruptGrace.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation) (domain.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.Outcome{}, err
	}

	//nolint:gosec // the program and arguments are supplied by the user
	cmd := exec.CommandContext(ctx, inv.Program, inv.Argv()...)
	cmd.Dir = inv.Dir
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	err := cmd.Run()
	if err == nil {
		return domain.Pass(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			e.logger.Warn("build tool interrupted: " + strings.Join(inv.CommandLine(), " "))
		}
		return domain.Fail(exitErr.ExitCode(), exitErr.String()), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.Outcome{}, ctxErr
	}

	spawnErr := zerr.With(zerr.Wrap(err, "could not start process"), "program", inv.Program)
	spawnErr = zerr.With(spawnErr, "dir", inv.Dir)
	return domain.Outcome{}, errors.Join(domain.ErrSpawnFailed, spawnErr)
}
