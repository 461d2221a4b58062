// Package project is an in-memory build host: a project with applied
// capabilities, declared source sets and a lazily configured task graph.
//
// Tasks are registered as providers and created only when something needs
// them (planning, execution or an explicit Get). Configuration actions added
// to a provider before that point are queued and run on realization.
package project

import (
	"sort"

	"github.com/spechtlabs/golint-quality/binding"
	"github.com/spechtlabs/golint-quality/internal/logging"
)

// GroupVerification is the group of check and the tool tasks.
const GroupVerification = "verification"

// Project is one build unit. It is not safe for concurrent use; the host
// configures and runs it from a single goroutine.
type Project struct {
	name string
	dir  string
	log  *logging.Logger

	capabilities map[binding.Capability]struct{}

	sourceSets      []*SourceSet
	sourceSetByName map[string]*SourceSet

	tasks     map[string]*TaskProvider
	taskOrder []string
}

// Option configures a Project.
type Option func(*Project)

// WithLogger sets the logger used for task execution.
func WithLogger(l *logging.Logger) Option {
	return func(p *Project) {
		p.log = l
	}
}

// New creates a project rooted at dir with the lifecycle check task
// registered.
func New(name, dir string, opts ...Option) *Project {
	p := &Project{
		name:            name,
		dir:             dir,
		log:             logging.Nop(),
		capabilities:    make(map[binding.Capability]struct{}),
		sourceSetByName: make(map[string]*SourceSet),
		tasks:           make(map[string]*TaskProvider),
	}
	for _, opt := range opts {
		opt(p)
	}

	// Cannot collide on an empty container.
	_, _ = p.Register(binding.CheckTaskName,
		WithGroup(GroupVerification),
		WithDescription("Runs all verification tasks."),
	)
	return p
}

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Dir returns the project root directory.
func (p *Project) Dir() string { return p.dir }

// HasCapability reports whether c has been applied.
func (p *Project) HasCapability(c binding.Capability) (bool, error) {
	if c == "" {
		return false, ErrInvalidCapability
	}
	_, ok := p.capabilities[c]
	return ok, nil
}

// ApplyCapability applies c. Applying twice is a no-op.
func (p *Project) ApplyCapability(c binding.Capability) error {
	if c == "" {
		return ErrInvalidCapability
	}
	if _, ok := p.capabilities[c]; ok {
		return nil
	}
	p.capabilities[c] = struct{}{}
	p.log.Debug("capability applied", "capability", string(c))
	return nil
}

// Capabilities returns the applied capabilities, sorted.
func (p *Project) Capabilities() []binding.Capability {
	out := make([]binding.Capability, 0, len(p.capabilities))
	for c := range p.capabilities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var _ binding.Project = (*Project)(nil)
