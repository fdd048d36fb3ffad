// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/allfeat/internal/core/domain"
)

// Executor defines the interface for running an assembled invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute spawns the invocation with inherited standard streams and blocks until it exits.
	//
	// A process that ran and exited non-zero yields a failed Outcome and a nil error.
	// An error is returned only when the process could not be started.
	Execute(ctx context.Context, inv domain.Invocation) (domain.Outcome, error)
}
