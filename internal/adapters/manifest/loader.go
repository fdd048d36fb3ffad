// Package manifest discovers crates and their features from Cargo.toml files.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the cargo manifest file name.
const Filename = "Cargo.toml"

// depPrefix marks an explicit optional dependency reference in a feature,
// which suppresses the dependency's implicit feature.
const depPrefix = "dep:"

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader by decoding Cargo.toml with BurntSushi/toml.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new manifest Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load returns the package declared by dir/Cargo.toml.
func (l *Loader) Load(dir string) (domain.Crate, error) {
	m, err := readManifest(dir)
	if err != nil {
		return domain.Crate{}, err
	}
	if m.Package == nil {
		return domain.Crate{}, zerr.With(domain.ErrNoCrates, "dir", dir)
	}
	return toCrate(dir, m), nil
}

// Discover returns the package declared by dir/Cargo.toml followed by its
// workspace members in glob order. Excluded members are skipped.
func (l *Loader) Discover(dir string) ([]domain.Crate, error) {
	m, err := readManifest(dir)
	if err != nil {
		return nil, err
	}

	var crates []domain.Crate
	seen := make(map[string]bool)

	if m.Package != nil {
		crates = append(crates, toCrate(dir, m))
		seen[filepath.Clean(dir)] = true
	}

	if m.Workspace != nil {
		members, err := expandMembers(dir, m.Workspace)
		if err != nil {
			return nil, err
		}
		for _, member := range members {
			if seen[member] {
				continue
			}
			seen[member] = true

			crate, err := l.Load(member)
			if err != nil {
				return nil, zerr.With(err, "workspace", dir)
			}
			crates = append(crates, crate)
		}
	}

	if len(crates) == 0 {
		return nil, zerr.With(domain.ErrNoCrates, "dir", dir)
	}

	l.logger.Info(fmt.Sprintf("discovered %d crate(s) in %s", len(crates), dir))
	return crates, nil
}

func readManifest(dir string) (*cargoManifest, error) {
	path := filepath.Join(dir, Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from user provided directories
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var m cargoManifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	return &m, nil
}

func toCrate(dir string, m *cargoManifest) domain.Crate {
	meta := m.Package.Metadata.AllFeatures

	features := make([]string, 0, len(m.Features))
	for name := range m.Features {
		features = append(features, name)
	}
	slices.Sort(features)

	return domain.Crate{
		Name:                 m.Package.Name,
		Dir:                  dir,
		Features:             features,
		OptionalDependencies: implicitFeatures(m),
		Rules: domain.MatrixRules{
			Denylist:                 meta.Denylist,
			Allowlist:                meta.Allowlist,
			AlwaysInclude:            meta.AlwaysIncludeFeatures,
			SkipFeatureSets:          meta.SkipFeatureSets,
			ExtraFeatures:            meta.ExtraFeatures,
			MaxCombinationSize:       meta.MaxCombinationSize,
			SkipOptionalDependencies: meta.SkipOptionalDependencies,
		},
	}
}

// implicitFeatures returns the optional dependencies that cargo exposes as
// features, i.e. those never referenced with the dep: prefix.
func implicitFeatures(m *cargoManifest) []string {
	explicit := make(map[string]bool)
	for _, values := range m.Features {
		for _, v := range values {
			if name, ok := strings.CutPrefix(v, depPrefix); ok {
				explicit[name] = true
			}
		}
	}

	tables := []map[string]any{m.Dependencies, m.BuildDependencies}
	for _, target := range m.Target {
		tables = append(tables, target.Dependencies, target.BuildDependencies)
	}

	var optional []string
	for _, deps := range tables {
		for name, spec := range deps {
			if explicit[name] || !isOptional(spec) {
				continue
			}
			optional = append(optional, name)
		}
	}
	slices.Sort(optional)
	return slices.Compact(optional)
}

func isOptional(spec any) bool {
	table, ok := spec.(map[string]any)
	if !ok {
		return false
	}
	optional, _ := table["optional"].(bool)
	return optional
}

// expandMembers resolves the workspace member globs to directories holding a manifest.
func expandMembers(dir string, ws *cargoWorkspace) ([]string, error) {
	excluded := make(map[string]bool, len(ws.Exclude))
	for _, ex := range ws.Exclude {
		excluded[filepath.Join(dir, ex)] = true
	}

	var members []string
	for _, pattern := range ws.Members {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid workspace member pattern"), "pattern", pattern)
		}
		slices.Sort(matches)
		for _, match := range matches {
			if excluded[match] || !hasManifest(match) {
				continue
			}
			members = append(members, match)
		}
	}
	return members, nil
}

func hasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, Filename))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
