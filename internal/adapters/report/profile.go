package report

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/allfeat/internal/core/domain"
	"golang.org/x/term"
)

// fdWriter is implemented by writers backed by a file descriptor, such as *os.File.
type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// colorProfile resolves the profile for a color mode and destination.
// NO_COLOR disables colors in every mode.
func colorProfile(mode domain.ColorMode, w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	switch mode {
	case domain.ColorNever:
		return termenv.Ascii
	case domain.ColorAlways:
		return termenv.ANSI
	default:
		if !isTerminal(w) {
			return termenv.Ascii
		}
		return termenv.EnvColorProfile()
	}
}
