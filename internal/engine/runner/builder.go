// Package runner builds cargo invocations for a feature combination and runs them.
package runner

import (
	"slices"

	"go.trai.ch/allfeat/internal/core/domain"
)

// Build assembles the invocation of program for req.
//
// Default features are always disabled so the requested set is the only source
// of enabled features. When req.LintArgs is empty, req.Args is split on the
// first two Separator-delimited segments: the first is passed to cargo, the
// second becomes the linter segment. Anything after a second Separator is
// recorded in Invocation.Ignored and not passed on.
func Build(program string, req domain.Request) domain.Invocation {
	inv := domain.Invocation{
		Program:    program,
		Subcommand: req.Kind.Name(),
		Features:   req.Features.Join(),
		Dir:        req.Dir,
	}

	if len(req.LintArgs) > 0 {
		inv.Args = slices.Clone(req.Args)
		inv.LintArgs = lintSegment(req.LintArgs)
		return inv
	}

	direct, lint, ignored, hasLint := splitArgs(req.Args)
	inv.Args = direct
	if hasLint {
		inv.LintArgs = lintSegment(lint)
	}
	inv.Ignored = ignored
	return inv
}

// splitArgs cuts args at the first and second Separator.
func splitArgs(args []string) (direct, lint, ignored []string, hasLint bool) {
	first := slices.Index(args, domain.Separator)
	if first < 0 {
		return slices.Clone(args), nil, nil, false
	}
	direct = slices.Clone(args[:first])

	rest := args[first+1:]
	second := slices.Index(rest, domain.Separator)
	if second < 0 {
		return direct, slices.Clone(rest), nil, true
	}
	return direct, slices.Clone(rest[:second]), slices.Clone(rest[second+1:]), true
}

func lintSegment(args []string) []string {
	return slices.Concat([]string{domain.Separator}, args)
}
