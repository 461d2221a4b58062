// Package binding wires a tool's per-source-set verification tasks into a
// project's aggregate check task.
//
// Upstream tool integrations tend to bind every task they create to check,
// including tasks for source sets nobody asked to verify. Bind applies the
// tool's base capability itself, depends check on exactly the configured
// source sets and only then lets the tool's own factory create the tasks.
//
// The host build is reached only through the interfaces in this package, so
// any project model can be bound:
//
//	err := binding.Bind(proj, binding.SourceSets{mainSet}, binding.Tool{
//		Name:  "bugscan",
//		Base:  "bugscan-base",
//		Tasks: factory,
//	})
package binding

import (
	"errors"
	"fmt"
)

// CheckTaskName is the aggregate verification task of a project.
const CheckTaskName = "check"

// ErrNoMaterializer is returned when a tool has no task factory.
var ErrNoMaterializer = errors.New("tool has no task materializer")

// Capability identifies a plugin or base integration applied to a project.
type Capability string

// Project is the host surface Bind mutates.
type Project interface {
	// HasCapability reports whether c was already applied.
	HasCapability(c Capability) (bool, error)
	// ApplyCapability applies c to the project.
	ApplyCapability(c Capability) error
	// Named returns a lazy handle to an existing task.
	Named(name string) (TaskProvider, error)
}

// TaskProvider is a handle to a task that may not be realized yet.
type TaskProvider interface {
	// Configure runs action when the task is realized, not before.
	Configure(action func(Task))
}

// Task is a realized unit of work.
type Task interface {
	DependsOn(names ...string)
}

// SourceSet is a named group of inputs a tool verifies independently.
type SourceSet interface {
	// TaskName returns the deterministic task name for verb and this source set.
	TaskName(verb string) string
}

// Configuration lists the source sets that participate in check.
type Configuration interface {
	SourceSets() []SourceSet
}

// SourceSets is a Configuration backed by a slice.
type SourceSets []SourceSet

// SourceSets returns the slice itself.
func (s SourceSets) SourceSets() []SourceSet { return s }

// Materializer creates the actual per-source-set tasks of a tool.
type Materializer interface {
	Materialize(p Project) error
}

// MaterializerFunc adapts a function to Materializer.
type MaterializerFunc func(p Project) error

// Materialize calls f(p).
func (f MaterializerFunc) Materialize(p Project) error { return f(p) }

// Tool describes what Bind needs to know about a tool.
type Tool struct {
	// Name is the task verb, e.g. "bugscan" for bugscanMain.
	Name string
	// Base marks the tool's foundational integration on the project.
	Base Capability
	// Tasks materializes the tool's tasks. Invoked exactly once.
	Tasks Materializer
}

// Bind makes the project's check task depend on one task of tool per source
// set in cfg.
//
// When tool.Base is already applied, by another plugin or by hand, Bind does
// nothing. Callers must invoke Bind at most once per project and tool; a
// second direct call is only guarded by that capability probe.
func Bind(p Project, cfg Configuration, tool Tool) error {
	if tool.Tasks == nil {
		return fmt.Errorf("bind %s: %w", tool.Name, ErrNoMaterializer)
	}

	applied, err := p.HasCapability(tool.Base)
	if err != nil {
		return fmt.Errorf("bind %s: probe %s: %w", tool.Name, tool.Base, err)
	}
	if applied {
		return nil
	}

	if err := p.ApplyCapability(tool.Base); err != nil {
		return fmt.Errorf("bind %s: apply %s: %w", tool.Name, tool.Base, err)
	}

	var required []string
	if cfg != nil {
		for _, ss := range cfg.SourceSets() {
			required = append(required, ss.TaskName(tool.Name))
		}
	}

	check, err := p.Named(CheckTaskName)
	if err != nil {
		return fmt.Errorf("bind %s: %w", tool.Name, err)
	}
	check.Configure(func(t Task) {
		t.DependsOn(required...)
	})

	if err := tool.Tasks.Materialize(p); err != nil {
		return fmt.Errorf("bind %s: materialize tasks: %w", tool.Name, err)
	}
	return nil
}
