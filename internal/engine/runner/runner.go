package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports"
)

// Runner announces and executes one invocation per request.
type Runner struct {
	program  string
	executor ports.Executor
	reporter ports.Reporter
	logger   ports.Logger
}

// New creates a Runner invoking program through executor.
func New(program string, executor ports.Executor, reporter ports.Reporter, logger ports.Logger) *Runner {
	return &Runner{
		program:  program,
		executor: executor,
		reporter: reporter,
		logger:   logger,
	}
}

// Run builds the invocation for req, prints its status line and blocks until
// the process exits.
//
// A failed build is reported through the Outcome. The returned error is
// reserved for a status line that could not be written and for a process
// that could not be spawned.
func (r *Runner) Run(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	inv := Build(r.program, req)

	if len(inv.Ignored) > 0 {
		r.logger.Warn(fmt.Sprintf(
			"ignoring arguments after a second %q for crate %s: %s",
			domain.Separator, req.Crate, strings.Join(inv.Ignored, " "),
		))
	}

	if err := r.reporter.Status(req.Kind, req.Crate, req.Features); err != nil {
		return domain.Outcome{}, errors.Join(domain.ErrReportFailed, err)
	}

	return r.executor.Execute(ctx, inv)
}
