package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/spechtlabs/golint-quality/binding"
)

// Action is the work a task performs when executed.
type Action func(ctx context.Context) error

// Task is a realized unit of work.
type Task struct {
	name        string
	group       string
	description string
	action      Action
	deps        []string
}

// Name returns the task name.
func (t *Task) Name() string { return t.name }

// Group returns the task group.
func (t *Task) Group() string { return t.group }

// Description returns the human-readable description.
func (t *Task) Description() string { return t.description }

// Dependencies returns the declared dependency edges in declaration order.
// Duplicate edges are kept.
func (t *Task) Dependencies() []string {
	return append([]string(nil), t.deps...)
}

// DependsOn adds dependency edges.
func (t *Task) DependsOn(names ...string) {
	t.deps = append(t.deps, names...)
}

// SetAction replaces the task action.
func (t *Task) SetAction(a Action) { t.action = a }

// TaskOption configures a task when it is realized.
type TaskOption func(*Task)

// WithGroup sets the task group.
func WithGroup(group string) TaskOption {
	return func(t *Task) { t.group = group }
}

// WithDescription sets the task description.
func WithDescription(desc string) TaskOption {
	return func(t *Task) { t.description = desc }
}

// WithAction sets the task action.
func WithAction(a Action) TaskOption {
	return func(t *Task) { t.action = a }
}

// WithDependsOn adds dependency edges.
func WithDependsOn(names ...string) TaskOption {
	return func(t *Task) { t.DependsOn(names...) }
}

// TaskProvider is a lazy handle to a registered task.
type TaskProvider struct {
	name    string
	opts    []TaskOption
	pending []func(binding.Task)
	task    *Task
}

// Name returns the name of the task behind the provider.
func (tp *TaskProvider) Name() string { return tp.name }

// IsRealized reports whether the task has been created.
func (tp *TaskProvider) IsRealized() bool { return tp.task != nil }

// Configure runs action when the task is realized. On an already realized
// task it runs immediately.
func (tp *TaskProvider) Configure(action func(binding.Task)) {
	if tp.task != nil {
		action(tp.task)
		return
	}
	tp.pending = append(tp.pending, action)
}

// Get realizes the task: registration options are applied first, then the
// queued configuration actions in the order they were added.
func (tp *TaskProvider) Get() *Task {
	if tp.task != nil {
		return tp.task
	}

	t := &Task{name: tp.name}
	for _, opt := range tp.opts {
		opt(t)
	}
	tp.task = t

	pending := tp.pending
	tp.pending = nil
	for _, action := range pending {
		action(t)
	}
	return t
}

// Register adds a task without creating it.
func (p *Project) Register(name string, opts ...TaskOption) (*TaskProvider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("register task: empty name")
	}
	if _, exists := p.tasks[name]; exists {
		return nil, &TaskError{Task: name, Err: ErrDuplicateTask}
	}

	tp := &TaskProvider{name: name, opts: opts}
	p.tasks[name] = tp
	p.taskOrder = append(p.taskOrder, name)
	return tp, nil
}

// Task returns the concrete provider for name.
func (p *Project) Task(name string) (*TaskProvider, bool) {
	tp, ok := p.tasks[name]
	return tp, ok
}

// Named returns a lazy handle to the task called name.
func (p *Project) Named(name string) (binding.TaskProvider, error) {
	tp, ok := p.tasks[name]
	if !ok {
		return nil, unknownTask(name)
	}
	return tp, nil
}

// TaskNames returns registered task names in registration order.
func (p *Project) TaskNames() []string {
	return append([]string(nil), p.taskOrder...)
}

var (
	_ binding.Task         = (*Task)(nil)
	_ binding.TaskProvider = (*TaskProvider)(nil)
)
