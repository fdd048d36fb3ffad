package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultProgram is the build tool used when nothing else is configured.
const DefaultProgram = "cargo"

// ColorMode selects when the status label is colored.
type ColorMode string

const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colors.
	ColorAlways ColorMode = "always"
	// ColorNever disables colors.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a color mode. The empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorAuto, "":
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", zerr.With(ErrInvalidColorMode, "color", s)
	}
}

// Settings is the resolved project configuration.
type Settings struct {
	// Program is the build tool executable.
	Program   string
	KeepGoing bool
	Color     ColorMode
	// Crates lists crate directories relative to the project root. Empty means discover.
	Crates []string
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() Settings {
	return Settings{
		Program: DefaultProgram,
		Color:   ColorAuto,
	}
}
