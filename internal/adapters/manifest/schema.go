package manifest

// cargoManifest is the subset of Cargo.toml read by the loader.
type cargoManifest struct {
	Package           *cargoPackage             `toml:"package"`
	Features          map[string][]string       `toml:"features"`
	Dependencies      map[string]any            `toml:"dependencies"`
	BuildDependencies map[string]any            `toml:"build-dependencies"`
	Target            map[string]cargoTargetDep `toml:"target"`
	Workspace         *cargoWorkspace           `toml:"workspace"`
}

type cargoPackage struct {
	Name     string        `toml:"name"`
	Metadata cargoMetadata `toml:"metadata"`
}

type cargoMetadata struct {
	AllFeatures matrixMetadata `toml:"cargo-all-features"`
}

// matrixMetadata mirrors [package.metadata.cargo-all-features].
type matrixMetadata struct {
	Denylist                 []string   `toml:"denylist"`
	Allowlist                []string   `toml:"allowlist"`
	AlwaysIncludeFeatures    []string   `toml:"always_include_features"`
	SkipFeatureSets          [][]string `toml:"skip_feature_sets"`
	ExtraFeatures            []string   `toml:"extra_features"`
	MaxCombinationSize       int        `toml:"max_combination_size"`
	SkipOptionalDependencies bool       `toml:"skip_optional_dependencies"`
}

type cargoTargetDep struct {
	Dependencies      map[string]any `toml:"dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

type cargoWorkspace struct {
	Members []string `toml:"members"`
	Exclude []string `toml:"exclude"`
}
