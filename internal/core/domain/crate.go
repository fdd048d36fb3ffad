package domain

// MatrixRules restrict which feature combinations are planned for a crate.
type MatrixRules struct {
	Denylist                 []string
	Allowlist                []string
	AlwaysInclude            []string
	SkipFeatureSets          [][]string
	ExtraFeatures            []string
	MaxCombinationSize       int
	SkipOptionalDependencies bool
}

// Crate is a single cargo package discovered from a manifest.
type Crate struct {
	Name string
	// Dir is the directory holding the crate's Cargo.toml.
	Dir string
	// Features are the keys of the [features] table.
	Features []string
	// OptionalDependencies are optional dependencies exposed as implicit features.
	OptionalDependencies []string
	Rules                MatrixRules
}

// PlannedSet is a feature combination scheduled for a crate.
type PlannedSet struct {
	Crate    *Crate
	Features FeatureSet
}
