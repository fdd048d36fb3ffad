// Package scheduler runs planned feature combinations one after another.
package scheduler

import (
	"context"
	"fmt"

	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports"
)

// Runner runs a single request to completion.
type Runner interface {
	Run(ctx context.Context, req domain.Request) (domain.Outcome, error)
}

// Scheduler executes requests strictly in order.
type Scheduler struct {
	runner Runner
	logger ports.Logger
}

// New creates a Scheduler driving runner.
func New(runner Runner, logger ports.Logger) *Scheduler {
	return &Scheduler{runner: runner, logger: logger}
}

// Run executes reqs in order and returns the results collected so far.
//
// A failed combination stops the run unless keepGoing is set. Spawn and
// reporting errors always stop the run and are returned with the partial
// summary. A cancelled context stops the run before the next request.
func (s *Scheduler) Run(ctx context.Context, reqs []domain.Request, keepGoing bool) (domain.Summary, error) {
	summary := domain.Summary{Planned: len(reqs)}

	for i, req := range reqs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome, err := s.runner.Run(ctx, req)
		if err != nil {
			return summary, err
		}

		summary.Add(req, outcome)
		if outcome.Passed() || keepGoing {
			continue
		}

		if remaining := len(reqs) - i - 1; remaining > 0 {
			s.logger.Info(fmt.Sprintf("stopping after first failure, %d combination(s) not run", remaining))
		}
		break
	}

	return summary, nil
}
