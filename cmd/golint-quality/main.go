// Command golint-quality runs the bugscan, style and lint tools over a Go
// project through a check task.
//
// Usage:
//
//	# Run check: every tool over the configured source sets
//	golint-quality
//
//	# Run single tasks, keep going after failures
//	golint-quality --continue bugscanMain styleTest
//
//	# List tasks and what check depends on
//	golint-quality tasks
//
// Configuration:
//
// Create a .golint-quality.yaml file in your project root:
//
//	sourceSets:
//	  main: {patterns: ["./..."]}
//	  test: {patterns: ["./..."], tests: true}
//	quality:
//	  # Source sets whose tasks check depends on (tasks exist for all)
//	  sourceSets: [main]
//	  strict: true
//	  exclude: ["*_gen.go"]
//	  tools:
//	    lint: false
//	analyzers:
//	  errcheck: false
//
// Tools:
//   - bugscan: go vet passes, staticcheck SA checks, errcheck
//   - style: stylecheck ST checks, exporteddoc
//   - lint: simple S checks, ineffassign, noprint
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spechtlabs/golint-quality/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "golint-quality: %v\n", err)
		stop()
		os.Exit(1)
	}
}
