package tools

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
)

// ConsoleReporter prints violations of a task in a compact listing:
//
//	bugscanMain: 2 violations
//	  pkg/partner.go:12:2: [errcheck] error return value is not checked
type ConsoleReporter struct {
	mu  sync.Mutex
	w   io.Writer
	dir string

	header *color.Color
	pos    *color.Color
	name   *color.Color
}

// NewConsoleReporter creates a reporter writing to w. Positions are printed
// relative to dir when possible.
func NewConsoleReporter(w io.Writer, dir string, colored bool) *ConsoleReporter {
	r := &ConsoleReporter{
		w:      w,
		dir:    dir,
		header: color.New(color.FgRed, color.Bold),
		pos:    color.New(color.FgCyan),
		name:   color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.header, r.pos, r.name} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Report prints the diagnostics of task. Nothing is printed without
// diagnostics.
func (r *ConsoleReporter) Report(task string, diags []Diagnostic) {
	if r == nil || len(diags) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	noun := "violations"
	if len(diags) == 1 {
		noun = "violation"
	}
	r.header.Fprintf(r.w, "%s: %d %s\n", task, len(diags), noun)

	for _, d := range diags {
		pos := d.Position
		pos.Filename = r.relative(pos.Filename)
		fmt.Fprintf(r.w, "  %s: %s %s\n",
			r.pos.Sprint(pos.String()), r.name.Sprintf("[%s]", d.Analyzer), d.Message)
	}
}

func (r *ConsoleReporter) relative(file string) string {
	if r.dir == "" || !filepath.IsAbs(file) {
		return file
	}
	if rel, err := filepath.Rel(r.dir, file); err == nil {
		return filepath.ToSlash(rel)
	}
	return file
}
