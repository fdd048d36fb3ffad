package ports

import "go.trai.ch/allfeat/internal/core/domain"

// ManifestLoader defines the interface for discovering crates from Cargo manifests.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Discover returns the package declared in dir and every workspace member it lists.
	Discover(dir string) ([]domain.Crate, error)
	// Load returns the single package declared in dir.
	Load(dir string) (domain.Crate, error)
}
