package project

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCapability = errors.New("invalid capability")
	ErrInvalidSourceSet  = errors.New("invalid source set")
	ErrDuplicateTask     = errors.New("task already registered")
	ErrUnknownTask       = errors.New("unknown task")
	ErrCycle             = errors.New("task dependency cycle")
)

// TaskError reports a failure attributed to a named task.
type TaskError struct {
	Task string
	Err  error
}

func (e *TaskError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("task %q: %v", e.Task, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }

func unknownTask(name string) error {
	return &TaskError{Task: name, Err: ErrUnknownTask}
}

func cycleError(path []string) error {
	return fmt.Errorf("%w: %s", ErrCycle, strings.Join(path, " -> "))
}
