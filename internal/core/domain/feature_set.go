package domain

import (
	"slices"
	"strings"
)

// FeatureSeparator joins feature names into the single --features token.
const FeatureSeparator = ","

// FeatureSet is an ordered collection of unique feature names selected for one invocation.
// The zero value is an empty set.
type FeatureSet struct {
	names []string
}

// NewFeatureSet creates a FeatureSet preserving first-seen order and dropping repeats.
func NewFeatureSet(names ...string) FeatureSet {
	if len(names) == 0 {
		return FeatureSet{}
	}

	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return FeatureSet{names: unique}
}

// Names returns a copy of the feature names in order.
func (f FeatureSet) Names() []string {
	return slices.Clone(f.names)
}

// Len returns the number of features in the set.
func (f FeatureSet) Len() int {
	return len(f.names)
}

// IsEmpty reports whether no features are selected.
func (f FeatureSet) IsEmpty() bool {
	return len(f.names) == 0
}

// Contains reports whether name is part of the set.
func (f FeatureSet) Contains(name string) bool {
	return slices.Contains(f.names, name)
}

// Join renders the set as a comma separated list without a trailing separator.
func (f FeatureSet) Join() string {
	return strings.Join(f.names, FeatureSeparator)
}

// String implements fmt.Stringer.
func (f FeatureSet) String() string {
	return "[" + f.Join() + "]"
}
