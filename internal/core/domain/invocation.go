package domain

import "slices"

// Separator divides cargo's own arguments from those forwarded to the tool cargo runs.
const Separator = "--"

// Request describes a single combination to run.
type Request struct {
	Kind     SubcommandKind
	Crate    string
	Features FeatureSet
	// Args are forwarded to cargo. When LintArgs is empty they may carry an
	// embedded Separator splitting off arguments for the linter.
	Args []string
	// LintArgs are forwarded after a Separator.
	LintArgs []string
	// Dir is the working directory of the cargo process.
	Dir string
}

// Invocation is the fully assembled external process description.
type Invocation struct {
	Program    string
	Subcommand string
	// Features is the comma joined feature token, empty when no feature is selected.
	Features string
	// Args are appended directly after the feature flags.
	Args []string
	// LintArgs is the linter segment including its leading Separator, nil when absent.
	LintArgs []string
	Dir      string
	// Ignored holds pass-through tokens that were dropped while routing arguments.
	Ignored []string
}

// Argv returns the arguments following the program name.
func (i Invocation) Argv() []string {
	argv := make([]string, 0, 4+len(i.Args)+len(i.LintArgs))
	argv = append(argv, i.Subcommand, "--no-default-features")
	if i.Features != "" {
		argv = append(argv, "--features", i.Features)
	}
	argv = append(argv, i.Args...)
	argv = append(argv, i.LintArgs...)
	return argv
}

// CommandLine returns the program followed by Argv.
func (i Invocation) CommandLine() []string {
	return slices.Concat([]string{i.Program}, i.Argv())
}
