package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SubcommandKind identifies the cargo action requested for every combination.
type SubcommandKind uint8

const (
	// Build compiles the crate.
	Build SubcommandKind = iota
	// Check type-checks the crate without producing artifacts.
	Check
	// Lint runs clippy over the crate.
	Lint
	// Test runs the crate's test suite.
	Test
)

// subcommandInfo holds the strings associated with a SubcommandKind.
type subcommandInfo struct {
	// Name is the literal subcommand handed to cargo.
	Name string
	// Alias is the CLI command name exposed by allfeat.
	Alias string
	// Label is the verb printed in front of each status line.
	Label string
}

// subcommands is indexed by SubcommandKind. The array length pins it to the
// declared kinds, so adding a kind without an entry fails the table test.
var subcommands = [...]subcommandInfo{
	Build: {Name: "build", Alias: "build-all-features", Label: "Building"},
	Check: {Name: "check", Alias: "check-all-features", Label: "Checking"},
	Lint:  {Name: "clippy", Alias: "clippy-all-features", Label: "Clippy"},
	Test:  {Name: "test", Alias: "test-all-features", Label: "Testing"},
}

// SubcommandKinds returns every kind in declaration order.
func SubcommandKinds() []SubcommandKind {
	kinds := make([]SubcommandKind, len(subcommands))
	for i := range subcommands {
		kinds[i] = SubcommandKind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k SubcommandKind) Valid() bool {
	return int(k) < len(subcommands)
}

func (k SubcommandKind) info() subcommandInfo {
	if !k.Valid() {
		return subcommandInfo{}
	}
	return subcommands[k]
}

// Name returns the literal cargo subcommand.
func (k SubcommandKind) Name() string { return k.info().Name }

// Alias returns the allfeat command name.
func (k SubcommandKind) Alias() string { return k.info().Alias }

// Label returns the status line verb.
func (k SubcommandKind) Label() string { return k.info().Label }

// String implements fmt.Stringer.
func (k SubcommandKind) String() string {
	switch k {
	case Build:
		return "build"
	case Check:
		return "check"
	case Lint:
		return "lint"
	case Test:
		return "test"
	default:
		return "unknown"
	}
}

// ParseSubcommandKind resolves a cargo subcommand name, an allfeat alias or a kind name.
func ParseSubcommandKind(s string) (SubcommandKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range SubcommandKinds() {
		if s == k.Name() || s == k.Alias() || s == k.String() {
			return k, nil
		}
	}
	return 0, zerr.With(ErrUnknownSubcommand, "subcommand", s)
}
