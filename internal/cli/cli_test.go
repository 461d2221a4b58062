package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spechtlabs/golint-quality/internal/config"
	"github.com/spechtlabs/golint-quality/internal/project"
	"github.com/spechtlabs/golint-quality/tools"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return dir
}

func TestTasksCommand(t *testing.T) {
	dir := writeConfig(t, "quality:\n  sourceSets: [main]\n")

	out, err := execute(t, "tasks", "--dir", dir, "--no-color")
	if err != nil {
		t.Fatalf("tasks error = %v", err)
	}

	for _, want := range []string{"TASK", "bugscanMain", "styleTest", "lintMain"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	var checkLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "check ") {
			checkLine = line
		}
	}
	if !strings.Contains(checkLine, "bugscanMain, styleMain, lintMain") {
		t.Errorf("check line = %q", checkLine)
	}
	if strings.Contains(checkLine, "Test") {
		t.Errorf("check should not depend on test tasks: %q", checkLine)
	}
}

// writeModule creates a Go module with a config file and the given sources.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := writeConfig(t, "quality:\n  sourceSets: [main]\n")
	files["go.mod"] = "module example.com/greet\n\ngo 1.25\n"
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

const greetSource = `// Package greet builds greetings.
package greet

// Greeting returns a greeting for name.
func Greeting(name string) string {
	return "hello " + name
}
`

func TestRunNamedTask(t *testing.T) {
	dir := writeModule(t, map[string]string{"greet.go": greetSource})

	if _, err := execute(t, "--dir", dir, "--no-color", "styleMain"); err != nil {
		t.Fatalf("styleMain error = %v", err)
	}
}

func TestRunNamedTaskReportsViolations(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"greet.go": greetSource,
		"shout.go": `package greet

import "fmt"

// Shout prints a greeting for name.
func Shout(name string) {
	fmt.Println(Greeting(name))
}
`,
	})

	out, err := execute(t, "--dir", dir, "--no-color", "lintMain")
	if !errors.Is(err, tools.ErrViolations) {
		t.Fatalf("lintMain error = %v, want %v", err, tools.ErrViolations)
	}
	if !strings.Contains(out, "shout.go") || !strings.Contains(out, "[noprint]") {
		t.Errorf("report is missing the noprint violation:\n%s", out)
	}
}

func TestUnknownTask(t *testing.T) {
	dir := writeConfig(t, "quality:\n  tools: {bugscan: false}\n")

	_, err := execute(t, "--dir", dir, "compileJava")
	if !errors.Is(err, project.ErrUnknownTask) {
		t.Fatalf("error = %v, want %v", err, project.ErrUnknownTask)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := writeConfig(t, "quality:\n  tools: {spotbugs: true}\n")

	_, err := execute(t, "tasks", "--dir", dir)
	if !errors.Is(err, config.ErrUnknownTool) {
		t.Fatalf("error = %v, want %v", err, config.ErrUnknownTool)
	}
}

func TestExplicitConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "quality.yaml")
	if err := os.WriteFile(path, []byte("quality:\n  tools: {style: false, lint: false}\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	out, err := execute(t, "tasks", "--dir", dir, "--config", path)
	if err != nil {
		t.Fatalf("tasks error = %v", err)
	}
	if strings.Contains(out, "styleMain") || !strings.Contains(out, "bugscanMain") {
		t.Errorf("unexpected task list:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "golint-quality ") {
		t.Errorf("version output = %q", out)
	}
}
