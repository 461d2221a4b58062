package project

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spechtlabs/golint-quality/binding"
)

// SourceSet is a named group of package patterns verified independently.
type SourceSet struct {
	name     string
	patterns []string
	tests    bool
}

// Name returns the source set name.
func (s *SourceSet) Name() string { return s.name }

// Patterns returns the go package patterns of the source set.
func (s *SourceSet) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Tests reports whether the source set covers test packages.
func (s *SourceSet) Tests() bool { return s.tests }

// TaskName returns verb followed by the capitalized source set name, so
// ("bugscan", "main") becomes "bugscanMain". An empty verb yields the bare
// name.
func (s *SourceSet) TaskName(verb string) string {
	if verb == "" {
		return s.name
	}
	return verb + capitalize(s.name)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// AddSourceSet declares a source set. Names are unique within the project.
func (p *Project) AddSourceSet(name string, patterns []string, tests bool) (*SourceSet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidSourceSet)
	}
	if _, exists := p.sourceSetByName[name]; exists {
		return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidSourceSet, name)
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	ss := &SourceSet{
		name:     name,
		patterns: append([]string(nil), patterns...),
		tests:    tests,
	}
	p.sourceSets = append(p.sourceSets, ss)
	p.sourceSetByName[name] = ss
	return ss, nil
}

// SourceSet returns the source set with the given name.
func (p *Project) SourceSet(name string) (*SourceSet, bool) {
	ss, ok := p.sourceSetByName[name]
	return ss, ok
}

// SourceSets returns all source sets in declaration order.
func (p *Project) SourceSets() []*SourceSet {
	return append([]*SourceSet(nil), p.sourceSets...)
}

var _ binding.SourceSet = (*SourceSet)(nil)
