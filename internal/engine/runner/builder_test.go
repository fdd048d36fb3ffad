package runner_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/engine/runner"
)

func TestBuild_FeatureFlag(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		expected []string
	}{
		{
			name:     "No features omits the flag",
			features: nil,
			expected: []string{"test", "--no-default-features"},
		},
		{
			name:     "Single feature",
			features: []string{"std"},
			expected: []string{"test", "--no-default-features", "--features", "std"},
		},
		{
			name:     "Features are comma joined",
			features: []string{"std", "serde", "rayon"},
			expected: []string{"test", "--no-default-features", "--features", "std,serde,rayon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := runner.Build("cargo", domain.Request{
				Kind:     domain.Test,
				Crate:    "demo",
				Features: domain.NewFeatureSet(tt.features...),
			})
			assert.Equal(t, tt.expected, inv.Argv())
		})
	}
}

func TestBuild_AlwaysDisablesDefaultFeatures(t *testing.T) {
	sets := [][]string{nil, {"a"}, {"a", "b"}, {"default"}}

	for _, kind := range domain.SubcommandKinds() {
		for _, set := range sets {
			inv := runner.Build("cargo", domain.Request{Kind: kind, Features: domain.NewFeatureSet(set...)})
			argv := inv.Argv()
			assert.Equal(t, kind.Name(), argv[0])
			assert.Equal(t, 1, countOf(argv, "--no-default-features"), "argv %v", argv)
			assert.Equal(t, len(set) > 0, slices.Contains(argv, "--features"), "argv %v", argv)
		}
	}
}

func TestBuild_ProgramAndDir(t *testing.T) {
	inv := runner.Build("/opt/cargo", domain.Request{Kind: domain.Check, Dir: "/work/crate"})

	assert.Equal(t, "/opt/cargo", inv.Program)
	assert.Equal(t, "check", inv.Subcommand)
	assert.Equal(t, "/work/crate", inv.Dir)
}

func TestBuild_ArgumentRouting(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		lintArgs []string
		direct   []string
		lint     []string
		ignored  []string
	}{
		{
			name:   "Plain args are passed directly",
			args:   []string{"--release", "--locked"},
			direct: []string{"--release", "--locked"},
		},
		{
			name:   "Embedded separator splits off linter args",
			args:   []string{"a", "b", "--", "x", "y"},
			direct: []string{"a", "b"},
			lint:   []string{"--", "x", "y"},
		},
		{
			name:   "Leading separator leaves no direct args",
			args:   []string{"--", "-D", "warnings"},
			direct: []string{},
			lint:   []string{"--", "-D", "warnings"},
		},
		{
			name:   "Trailing separator yields a bare linter segment",
			args:   []string{"a", "--"},
			direct: []string{"a"},
			lint:   []string{"--"},
		},
		{
			name:     "Secondary args are routed verbatim",
			args:     []string{"a", "b"},
			lintArgs: []string{"x", "y"},
			direct:   []string{"a", "b"},
			lint:     []string{"--", "x", "y"},
		},
		{
			name:     "Secondary args disable splitting of primary",
			args:     []string{"a", "--", "b"},
			lintArgs: []string{"x"},
			direct:   []string{"a", "--", "b"},
			lint:     []string{"--", "x"},
		},
		{
			name:    "Only the first two segments are used",
			args:    []string{"a", "--", "b", "--", "c"},
			direct:  []string{"a"},
			lint:    []string{"--", "b"},
			ignored: []string{"c"},
		},
		{
			name:    "Later separators are ignored too",
			args:    []string{"a", "--", "b", "--", "c", "--", "d"},
			direct:  []string{"a"},
			lint:    []string{"--", "b"},
			ignored: []string{"c", "--", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := runner.Build("cargo", domain.Request{
				Kind:     domain.Lint,
				Args:     tt.args,
				LintArgs: tt.lintArgs,
			})

			if len(tt.direct) == 0 {
				assert.Empty(t, inv.Args)
			} else {
				assert.Equal(t, tt.direct, inv.Args)
			}
			assert.Equal(t, tt.lint, inv.LintArgs)
			assert.Equal(t, tt.ignored, inv.Ignored)

			expected := slices.Concat([]string{"clippy", "--no-default-features"}, tt.direct, tt.lint)
			assert.Equal(t, expected, inv.Argv())
		})
	}
}

func TestBuild_DoesNotAliasCallerSlices(t *testing.T) {
	args := []string{"a", "--", "b"}
	inv := runner.Build("cargo", domain.Request{Kind: domain.Build, Args: args})

	inv.Args[0] = "mutated"
	inv.LintArgs[1] = "mutated"

	assert.Equal(t, []string{"a", "--", "b"}, args)
}

func countOf(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}
