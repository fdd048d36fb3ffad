// Package config provides the project settings loader for allfeat.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the settings file looked up in the manifest directory.
	DefaultFilename = "allfeat.yaml"
	// ProgramEnv names the environment variable holding the build tool path.
	// Cargo sets it when it runs allfeat as a subcommand.
	ProgramEnv = "CARGO"

	supportedVersion = "1"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a new Loader reading the build tool fallback from the environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger: logger,
		getenv: os.Getenv,
	}
}

// WithEnv replaces the environment lookup. Used for testing.
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// Load reads the settings at path. A missing file yields the defaults.
//
// The build tool is taken from the file's cargo key, then from $CARGO, then
// falls back to domain.DefaultProgram.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		settings.Program = l.resolveProgram("")
		return settings, nil
	case err != nil:
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Projectfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		return domain.Settings{}, zerr.With(
			zerr.With(zerr.New("unsupported config version"), "version", file.Version),
			"path", path,
		)
	}

	color, err := domain.ParseColorMode(file.Color)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	settings.Program = l.resolveProgram(file.Cargo)
	settings.KeepGoing = file.KeepGoing
	settings.Color = color
	settings.Crates = normalizeCrates(file.Crates)

	l.logger.Info("loaded settings from " + path)
	return settings, nil
}

func (l *Loader) resolveProgram(configured string) string {
	if p := strings.TrimSpace(configured); p != "" {
		return p
	}
	if p := strings.TrimSpace(l.getenv(ProgramEnv)); p != "" {
		return p
	}
	return domain.DefaultProgram
}

// normalizeCrates cleans the listed directories and drops repeats, keeping order.
func normalizeCrates(dirs []string) []string {
	if len(dirs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(dirs))
	res := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		res = append(res, dir)
	}
	return res
}
