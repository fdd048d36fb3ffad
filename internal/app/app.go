// Package app implements the application layer for allfeat.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports"
	"go.trai.ch/allfeat/internal/engine/matrix"
	"go.trai.ch/allfeat/internal/engine/runner"
	"go.trai.ch/allfeat/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	manifestLoader ports.ManifestLoader
	executor       ports.Executor
	reporter       ports.Reporter
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	manifestLoader ports.ManifestLoader,
	executor ports.Executor,
	reporter ports.Reporter,
	logger ports.Logger,
) *App {
	return &App{
		configLoader:   configLoader,
		manifestLoader: manifestLoader,
		executor:       executor,
		reporter:       reporter,
		logger:         logger,
	}
}

// PlanOptions selects the project and the slice of the matrix to plan.
type PlanOptions struct {
	// ConfigPath is the project file. Relative paths resolve against Dir.
	ConfigPath string
	// Dir is the directory holding the root Cargo.toml.
	Dir string
	// Chunks and Chunk select the Chunk-th of Chunks slices. Both zero plans everything.
	Chunks int
	Chunk  int
}

// RunOptions configures a matrix run.
type RunOptions struct {
	PlanOptions

	// KeepGoing continues after a failed combination.
	KeepGoing bool
	// Color overrides the configured color mode when set.
	Color string
	// Args are passed to cargo. A "--" inside them starts the linter arguments.
	Args []string
	// LintArgs are passed after "--" when set.
	LintArgs []string
}

// Matrix is the planned work for one invocation of the tool.
type Matrix struct {
	Settings domain.Settings
	Crates   []domain.Crate
	Sets     []domain.PlannedSet
	// Total is the number of combinations before chunking.
	Total int
}

// Plan loads the project and enumerates the feature combinations to run.
func (a *App) Plan(ctx context.Context, opts PlanOptions) (Matrix, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	settings, err := a.configLoader.Load(resolve(dir, opts.ConfigPath))
	if err != nil {
		return Matrix{}, errors.Join(domain.ErrInvalidConfiguration, err)
	}

	crates, err := a.loadCrates(dir, settings.Crates)
	if err != nil {
		return Matrix{}, errors.Join(domain.ErrInvalidConfiguration, err)
	}

	m := Matrix{Settings: settings, Crates: crates}
	for i := range m.Crates {
		if err := ctx.Err(); err != nil {
			return Matrix{}, err
		}
		for _, set := range matrix.Plan(m.Crates[i]) {
			m.Sets = append(m.Sets, domain.PlannedSet{Crate: &m.Crates[i], Features: set})
		}
	}
	m.Total = len(m.Sets)

	if opts.Chunks != 0 || opts.Chunk != 0 {
		chunk, err := matrix.Chunk(m.Sets, opts.Chunks, opts.Chunk)
		if err != nil {
			return Matrix{}, errors.Join(domain.ErrInvalidConfiguration, err)
		}
		m.Sets = chunk
	}

	return m, nil
}

func (a *App) loadCrates(dir string, configured []string) ([]domain.Crate, error) {
	if len(configured) == 0 {
		return a.manifestLoader.Discover(dir)
	}

	crates := make([]domain.Crate, 0, len(configured))
	for _, c := range configured {
		crate, err := a.manifestLoader.Load(resolve(dir, c))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configured crate")
		}
		crates = append(crates, crate)
	}
	return crates, nil
}

// Run plans the matrix and runs kind for every combination in order.
// The returned summary holds the results collected before any error.
func (a *App) Run(ctx context.Context, kind domain.SubcommandKind, opts RunOptions) (domain.Summary, error) {
	m, err := a.Plan(ctx, opts.PlanOptions)
	if err != nil {
		return domain.Summary{}, err
	}

	color := m.Settings.Color
	if opts.Color != "" {
		if color, err = domain.ParseColorMode(opts.Color); err != nil {
			return domain.Summary{}, errors.Join(domain.ErrInvalidConfiguration, err)
		}
	}
	a.reporter.SetColorMode(color)

	reqs := Requests(kind, m.Sets, opts.Args, opts.LintArgs)
	a.logger.Info(fmt.Sprintf("running %d of %d combination(s) with %s", len(reqs), m.Total, m.Settings.Program))

	r := runner.New(m.Settings.Program, a.executor, a.reporter, a.logger)
	summary, runErr := scheduler.New(r, a.logger).Run(ctx, reqs, opts.KeepGoing || m.Settings.KeepGoing)

	if err := a.reporter.Summary(summary); err != nil {
		return summary, errors.Join(runErr, err)
	}
	return summary, runErr
}

// Requests turns planned sets into runner requests sharing the same arguments.
func Requests(kind domain.SubcommandKind, sets []domain.PlannedSet, args, lintArgs []string) []domain.Request {
	reqs := make([]domain.Request, 0, len(sets))
	for _, set := range sets {
		reqs = append(reqs, domain.Request{
			Kind:     kind,
			Crate:    set.Crate.Name,
			Features: set.Features,
			Args:     args,
			LintArgs: lintArgs,
			Dir:      set.Crate.Dir,
		})
	}
	return reqs
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
