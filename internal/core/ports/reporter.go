package ports

import "go.trai.ch/allfeat/internal/core/domain"

// Reporter prints the per-combination status banner and the run summary.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// SetColorMode selects when the status label is colored.
	SetColorMode(mode domain.ColorMode)
	// Status announces the combination about to run.
	Status(kind domain.SubcommandKind, crate string, features domain.FeatureSet) error
	// Summary prints the totals and the failing combinations.
	Summary(summary domain.Summary) error
}
