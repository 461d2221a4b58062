// Package version provides version information for golint-quality.
package version

import (
	"fmt"
	"runtime"
)

// Build information, set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("golint-quality %s (commit: %s, built: %s, %s)",
		Version, Commit, Date, GoVersion)
}

// Attrs returns the build information as logger key-value pairs.
func Attrs() []any {
	return []any{"version", Version, "commit", Commit}
}
