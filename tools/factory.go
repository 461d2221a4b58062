package tools

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/golint-quality/binding"
	"github.com/spechtlabs/golint-quality/internal/logging"
	"github.com/spechtlabs/golint-quality/internal/project"
)

var (
	ErrUnsupportedProject = errors.New("project does not support tool tasks")
	ErrViolations         = errors.New("quality violations found")
)

// ViolationsError reports the violations found by one verification task.
type ViolationsError struct {
	Tool      string
	SourceSet string
	Count     int
}

func (e *ViolationsError) Error() string {
	return fmt.Sprintf("%s found %d violation(s) in source set %s", e.Tool, e.Count, e.SourceSet)
}

func (e *ViolationsError) Unwrap() error { return ErrViolations }

// Host is the project surface a TaskFactory needs beyond binding.Project.
type Host interface {
	binding.Project
	Dir() string
	SourceSets() []*project.SourceSet
	Task(name string) (*project.TaskProvider, bool)
	Register(name string, opts ...project.TaskOption) (*project.TaskProvider, error)
}

// Options configures the tasks created by a TaskFactory.
type Options struct {
	// Filter narrows the tool's analyzers, typically config.FilterAnalyzers.
	Filter func([]*analysis.Analyzer) []*analysis.Analyzer
	// Runner executes the analysis. Defaults to PackagesRunner.
	Runner Runner
	// Strict makes violations fail the task.
	Strict bool
	// Reporter prints violations; nil prints nothing.
	Reporter *ConsoleReporter
	// Exclude drops violations in files matching these globs.
	Exclude []string
	Logger  *logging.Logger
}

// TaskFactory registers one verification task per source set of a project.
// Like upstream tool plugins it covers every source set; which of them check
// depends on is decided by binding.Bind.
type TaskFactory struct {
	tool Tool
	opts Options
}

// NewTaskFactory creates a factory for tool.
func NewTaskFactory(tool Tool, opts Options) *TaskFactory {
	if opts.Runner == nil {
		opts.Runner = PackagesRunner{}
	}
	return &TaskFactory{tool: tool, opts: opts}
}

// Materialize registers <tool><SourceSet> for every source set of p. Task
// names already taken are left alone.
func (f *TaskFactory) Materialize(p binding.Project) error {
	h, ok := p.(Host)
	if !ok {
		return fmt.Errorf("%s: %w", f.tool.Name, ErrUnsupportedProject)
	}

	for _, ss := range h.SourceSets() {
		name := ss.TaskName(f.tool.Name)
		if _, exists := h.Task(name); exists {
			continue
		}

		_, err := h.Register(name,
			project.WithGroup(project.GroupVerification),
			project.WithDescription(fmt.Sprintf("Runs %s for the %s source set.", f.tool.Description, ss.Name())),
			project.WithAction(func(ctx context.Context) error {
				return f.verify(ctx, h.Dir(), name, ss)
			}),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *TaskFactory) analyzers() []*analysis.Analyzer {
	all := f.tool.Analyzers()
	if f.opts.Filter != nil {
		return f.opts.Filter(all)
	}
	return all
}

func (f *TaskFactory) verify(ctx context.Context, dir, task string, ss *project.SourceSet) error {
	log := f.opts.Logger.WithTask(task).With("tool", f.tool.Name, "source_set", ss.Name())

	as := f.analyzers()
	if len(as) == 0 {
		log.Info("no analyzers enabled, skipping")
		return nil
	}

	log.Debug("running analyzers", "analyzers", len(as), "patterns", ss.Patterns())
	diags, err := f.opts.Runner.Run(ctx, Request{
		Tool:      f.tool.Name,
		Dir:       dir,
		Patterns:  ss.Patterns(),
		Tests:     ss.Tests(),
		Analyzers: as,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", f.tool.Name, err)
	}

	diags = Exclude(diags, dir, f.opts.Exclude)
	f.opts.Reporter.Report(task, diags)

	if len(diags) == 0 {
		return nil
	}
	if !f.opts.Strict {
		log.Warn("violations found", "count", len(diags))
		return nil
	}
	return &ViolationsError{Tool: f.tool.Name, SourceSet: ss.Name(), Count: len(diags)}
}
