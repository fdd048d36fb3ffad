// Package report prints the status banner announcing each combination and the
// summary closing a run.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports"
	"go.trai.ch/zerr"
)

// labelWidth right-aligns the status verb the way cargo aligns its own.
const labelWidth = 12

// Colors.
var (
	Cyan  = lipgloss.Color("6")
	Green = lipgloss.Color("2")
	Red   = lipgloss.Color("1")
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter on top of lipgloss.
type Reporter struct {
	out io.Writer

	mu   sync.Mutex
	mode domain.ColorMode
}

// New creates a Reporter writing to stdout.
func New() *Reporter {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput creates a Reporter writing to w.
func NewWithOutput(w io.Writer) *Reporter {
	return &Reporter{out: w, mode: domain.ColorAuto}
}

// SetColorMode selects when the status label is colored.
func (r *Reporter) SetColorMode(mode domain.ColorMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
}

// renderer acquires a renderer for a single line. Styled strings carry their
// own reset sequence, so nothing outlives the line it was rendered for.
func (r *Reporter) renderer() *lipgloss.Renderer {
	re := lipgloss.NewRenderer(r.out)
	re.SetColorProfile(colorProfile(r.mode, r.out))
	return re
}

// Status prints "<Label> crate=<name> features=[<list>]" with a bold cyan label.
func (r *Reporter) Status(kind domain.SubcommandKind, crate string, features domain.FeatureSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	label := r.renderer().NewStyle().Bold(true).Foreground(Cyan).
		Render(fmt.Sprintf("%*s", labelWidth, kind.Label()))

	_, err := fmt.Fprintf(r.out, "%s crate=%s features=[%s]\n", label, crate, features.Join())
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportFailed.Error()), "crate", crate)
	}
	return nil
}

// Summary prints the totals followed by one line per failing combination.
func (r *Reporter) Summary(summary domain.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	re := r.renderer()
	bold := re.NewStyle().Bold(true)
	passed := re.NewStyle().Foreground(Green)
	failed := re.NewStyle().Foreground(Red)

	var b strings.Builder
	failures := summary.Failures()

	fmt.Fprintf(&b, "%s %d combination(s): %s, %s",
		bold.Render(fmt.Sprintf("%*s", labelWidth, "Finished")),
		len(summary.Results),
		passed.Render(fmt.Sprintf("%d passed", summary.Passed())),
		failed.Render(fmt.Sprintf("%d failed", len(failures))),
	)
	if skipped := summary.Planned - len(summary.Results); skipped > 0 {
		fmt.Fprintf(&b, ", %d not run", skipped)
	}
	b.WriteString("\n")

	if len(failures) == 0 && summary.Planned > 0 {
		fmt.Fprintf(&b, "%*s %s\n", labelWidth, "", passed.Render(Check+" all combinations passed"))
	}
	for _, f := range failures {
		fmt.Fprintf(&b, "%*s %s\n", labelWidth, "", failed.Render(fmt.Sprintf(
			"%s %s crate=%s features=[%s] (%s)",
			Cross, f.Request.Kind.Label(), f.Request.Crate, f.Request.Features.Join(), f.Outcome.Status,
		)))
	}

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return errors.Join(domain.ErrReportFailed, err)
	}
	return nil
}
