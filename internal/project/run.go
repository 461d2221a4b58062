package project

import (
	"context"
	"errors"
	"time"
)

// RunOptions controls task execution.
type RunOptions struct {
	// Continue keeps executing independent tasks after a failure.
	Continue bool
}

// Plan realizes the requested tasks and everything they depend on and
// returns them dependency-first. The order is deterministic: requested tasks
// are visited in argument order, dependencies in declaration order.
func (p *Project) Plan(names ...string) ([]string, error) {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var (
		order []string
		stack []string
	)

	var visit func(name string) error
	visit = func(name string) error {
		switch color[name] {
		case black:
			return nil
		case gray:
			// Back edge: report the path from the first occurrence of name.
			start := 0
			for i, n := range stack {
				if n == name {
					start = i
					break
				}
			}
			path := append(append([]string(nil), stack[start:]...), name)
			return cycleError(path)
		}

		tp, ok := p.tasks[name]
		if !ok {
			if len(stack) > 0 {
				return &TaskError{Task: stack[len(stack)-1], Err: unknownTask(name)}
			}
			return unknownTask(name)
		}

		color[name] = gray
		stack = append(stack, name)

		seen := make(map[string]struct{})
		for _, dep := range tp.Get().deps {
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			if err := visit(dep); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		color[name] = black
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Run executes the requested tasks and their dependencies serially.
//
// Without opts.Continue the first failure stops the build. With it, tasks
// whose dependencies failed are skipped, the rest still run, and all
// failures are joined into the returned error.
func (p *Project) Run(ctx context.Context, opts RunOptions, names ...string) error {
	order, err := p.Plan(names...)
	if err != nil {
		return err
	}

	failed := make(map[string]bool)
	var errs []error

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		t := p.tasks[name].Get()
		log := p.log.WithTask(name)

		if upstreamFailed(t, failed) {
			failed[name] = true
			log.Warn("task skipped, a dependency failed")
			continue
		}
		if t.action == nil {
			log.Debug("task up to date, nothing to do")
			continue
		}

		start := time.Now()
		log.Info("task started")
		if err := t.action(ctx); err != nil {
			failed[name] = true
			log.Error("task failed", "error", err, "duration", time.Since(start))
			errs = append(errs, &TaskError{Task: name, Err: err})
			if !opts.Continue {
				return errs[0]
			}
			continue
		}
		log.Info("task finished", "duration", time.Since(start))
	}

	return errors.Join(errs...)
}

func upstreamFailed(t *Task, failed map[string]bool) bool {
	for _, dep := range t.deps {
		if failed[dep] {
			return true
		}
	}
	return false
}
