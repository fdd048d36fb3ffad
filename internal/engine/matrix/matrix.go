// Package matrix enumerates the feature combinations planned for a crate.
package matrix

import (
	"errors"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/zerr"
)

// defaultFeature is enabled implicitly by cargo and never part of a combination.
const defaultFeature = "default"

// Candidates returns the sorted feature names combined for c.
func Candidates(c domain.Crate) []string {
	rules := c.Rules

	var names []string
	for _, f := range c.Features {
		if f != defaultFeature {
			names = append(names, f)
		}
	}
	if !rules.SkipOptionalDependencies {
		names = append(names, c.OptionalDependencies...)
	}
	names = append(names, rules.ExtraFeatures...)

	names = slices.DeleteFunc(names, func(name string) bool {
		return name == "" ||
			(len(rules.Allowlist) > 0 && !slices.Contains(rules.Allowlist, name)) ||
			slices.Contains(rules.Denylist, name) ||
			slices.Contains(rules.AlwaysInclude, name)
	})
	slices.Sort(names)
	return slices.Compact(names)
}

// Plan returns every feature combination for c, smallest first.
//
// Combinations of equal size follow lexicographic order of the candidates.
// Each set starts with the always-included features, which do not count
// towards the maximum combination size.
func Plan(c domain.Crate) []domain.FeatureSet {
	candidates := Candidates(c)

	limit := c.Rules.MaxCombinationSize
	if limit <= 0 || limit > len(candidates) {
		limit = len(candidates)
	}

	var plan []domain.FeatureSet
	seen := make(map[uint64]bool)

	for size := 0; size <= limit; size++ {
		combinations(candidates, size, func(combo []string) {
			set := domain.NewFeatureSet(slices.Concat(c.Rules.AlwaysInclude, combo)...)
			if skipped(set, c.Rules.SkipFeatureSets) {
				return
			}
			fp := Fingerprint(set)
			if seen[fp] {
				return
			}
			seen[fp] = true
			plan = append(plan, set)
		})
	}
	return plan
}

// Fingerprint hashes the set independently of feature order.
func Fingerprint(set domain.FeatureSet) uint64 {
	names := set.Names()
	slices.Sort(names)

	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// skipped reports whether set contains every feature of one of the skip sets.
func skipped(set domain.FeatureSet, skips [][]string) bool {
	for _, skip := range skips {
		if len(skip) == 0 {
			continue
		}
		if !slices.ContainsFunc(skip, func(name string) bool { return !set.Contains(name) }) {
			return true
		}
	}
	return false
}

// combinations calls fn with every size-k combination of items in lexicographic index order.
// The slice passed to fn is reused between calls.
func combinations(items []string, k int, fn func([]string)) {
	combo := make([]string, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(combo)
			return
		}
		for i := start; i <= len(items)-(k-depth); i++ {
			combo[depth] = items[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

// Chunk returns the k-th (1-based) of n contiguous, near-equal slices of items.
func Chunk[T any](items []T, n, k int) ([]T, error) {
	if n < 1 || k < 1 || k > n {
		err := zerr.With(zerr.With(zerr.New("chunk out of range"), "chunks", n), "chunk", k)
		return nil, errors.Join(domain.ErrInvalidChunk, err)
	}
	start := (k - 1) * len(items) / n
	end := k * len(items) / n
	return items[start:end], nil
}
