// Package quality is the plugin entry point: it reads the golint-quality
// configuration and binds every enabled tool to a project's check task.
package quality

import (
	"fmt"
	"io"

	"github.com/spechtlabs/golint-quality/binding"
	"github.com/spechtlabs/golint-quality/internal/config"
	"github.com/spechtlabs/golint-quality/internal/logging"
	"github.com/spechtlabs/golint-quality/internal/project"
	"github.com/spechtlabs/golint-quality/tools"
)

// Capability marks the quality plugin as applied.
const Capability binding.Capability = "golint-quality"

// ErrUnknownSourceSet is returned when a participating source set is
// declared neither by the host nor by the configuration.
var ErrUnknownSourceSet = config.ErrUnknownSourceSet

// Plugin applies golint-quality to projects.
type Plugin struct {
	cfg     *config.Config
	log     *logging.Logger
	runner  tools.Runner
	console io.Writer
	colored bool
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(p *Plugin) { p.log = l }
}

// WithRunner replaces the analysis runner of every tool task.
func WithRunner(r tools.Runner) Option {
	return func(p *Plugin) { p.runner = r }
}

// WithConsole sets where violations are printed when console reporting is
// enabled, and whether the output is colored.
func WithConsole(w io.Writer, colored bool) Option {
	return func(p *Plugin) {
		p.console = w
		p.colored = colored
	}
}

// New creates a plugin for cfg. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *Plugin {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Plugin{cfg: cfg, log: logging.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Apply installs the plugin on proj. It does nothing if the plugin was
// already applied.
func (pl *Plugin) Apply(proj *project.Project) error {
	applied, err := proj.HasCapability(Capability)
	if err != nil {
		return err
	}
	if applied {
		pl.log.Debug("quality plugin already applied", "project", proj.Name())
		return nil
	}

	for name := range pl.cfg.Quality.Tools {
		if _, ok := tools.Lookup(name); !ok {
			return fmt.Errorf("%w: %q", config.ErrUnknownTool, name)
		}
	}
	if err := pl.declareSourceSets(proj); err != nil {
		return err
	}
	participating, err := pl.participating(proj)
	if err != nil {
		return err
	}
	if err := proj.ApplyCapability(Capability); err != nil {
		return err
	}

	opts := tools.Options{
		Filter:  pl.cfg.FilterAnalyzers,
		Runner:  pl.runner,
		Strict:  pl.cfg.StrictMode(),
		Exclude: pl.cfg.Quality.Exclude,
		Logger:  pl.log,
	}
	if pl.console != nil && pl.cfg.ConsoleReportingEnabled() {
		opts.Reporter = tools.NewConsoleReporter(pl.console, proj.Dir(), pl.colored)
	}

	for _, tool := range tools.All() {
		log := pl.log.With("tool", tool.Name)
		if !pl.cfg.ToolEnabled(tool.Name) {
			log.Debug("tool disabled")
			continue
		}

		if err := binding.Bind(proj, participating, tool.Binding(opts)); err != nil {
			return err
		}
		log.Debug("tool bound", "source_sets", pl.cfg.Quality.SourceSets)
	}
	return nil
}

// declareSourceSets adds the configured source sets the host has not
// declared itself.
func (pl *Plugin) declareSourceSets(proj *project.Project) error {
	for _, name := range pl.cfg.SourceSetNames() {
		if _, ok := proj.SourceSet(name); ok {
			continue
		}
		ss := pl.cfg.SourceSets[name]
		if _, err := proj.AddSourceSet(name, ss.Patterns, ss.Tests); err != nil {
			return err
		}
	}
	return nil
}

func (pl *Plugin) participating(proj *project.Project) (binding.SourceSets, error) {
	out := make(binding.SourceSets, 0, len(pl.cfg.Quality.SourceSets))
	for _, name := range pl.cfg.Quality.SourceSets {
		ss, ok := proj.SourceSet(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSourceSet, name)
		}
		out = append(out, ss)
	}
	return out, nil
}
