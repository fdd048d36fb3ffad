package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/allfeat/internal/adapters/report"
	"go.trai.ch/allfeat/internal/core/domain"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReporter_Status_Plain(t *testing.T) {
	tests := []struct {
		kind     domain.SubcommandKind
		features []string
		expected string
	}{
		{domain.Build, []string{"a", "b"}, "    Building crate=demo features=[a,b]\n"},
		{domain.Check, nil, "    Checking crate=demo features=[]\n"},
		{domain.Lint, []string{"std"}, "      Clippy crate=demo features=[std]\n"},
		{domain.Test, []string{"std", "serde"}, "     Testing crate=demo features=[std,serde]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r := report.NewWithOutput(&buf)
			r.SetColorMode(domain.ColorNever)

			err := r.Status(tt.kind, "demo", domain.NewFeatureSet(tt.features...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestReporter_Status_AutoIsPlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewWithOutput(&buf)

	require.NoError(t, r.Status(domain.Test, "demo", domain.NewFeatureSet("a")))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestReporter_Status_Always(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	r := report.NewWithOutput(&buf)
	r.SetColorMode(domain.ColorAlways)

	require.NoError(t, r.Status(domain.Build, "demo", domain.NewFeatureSet("a", "b")))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b["), "expected an escape sequence, got %q", out)
	assert.Contains(t, out, "Building")
	// The label resets its attributes before the plain part of the line.
	assert.Contains(t, out, "\x1b[0m crate=demo features=[a,b]\n")
}

func TestReporter_Status_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := report.NewWithOutput(&buf)
	r.SetColorMode(domain.ColorAlways)

	require.NoError(t, r.Status(domain.Build, "demo", domain.FeatureSet{}))
	assert.Equal(t, "    Building crate=demo features=[]\n", buf.String())
}

func TestReporter_Status_WriteError(t *testing.T) {
	r := report.NewWithOutput(failingWriter{})
	r.SetColorMode(domain.ColorAlways)

	err := r.Status(domain.Build, "demo", domain.FeatureSet{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write status")
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewWithOutput(&buf)
	r.SetColorMode(domain.ColorNever)

	summary := domain.Summary{Planned: 4}
	summary.Add(domain.Request{Kind: domain.Test, Crate: "demo"}, domain.Pass())
	summary.Add(domain.Request{Kind: domain.Test, Crate: "demo", Features: domain.NewFeatureSet("a")},
		domain.Fail(101, "exit status 101"))

	require.NoError(t, r.Summary(summary))
	assert.Equal(t,
		"    Finished 2 combination(s): 1 passed, 1 failed, 2 not run\n"+
			"             ✗ Testing crate=demo features=[a] (exit status 101)\n",
		buf.String(),
	)
}

func TestReporter_Summary_AllPassed(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewWithOutput(&buf)
	r.SetColorMode(domain.ColorNever)

	summary := domain.Summary{Planned: 1}
	summary.Add(domain.Request{Kind: domain.Check, Crate: "demo"}, domain.Pass())

	require.NoError(t, r.Summary(summary))
	assert.Equal(t,
		"    Finished 1 combination(s): 1 passed, 0 failed\n"+
			"             ✓ all combinations passed\n",
		buf.String(),
	)
}
