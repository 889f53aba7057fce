// Package version holds build metadata injected at link time.
package version

var (
	// Version is the semantic version, set via -ldflags at release builds.
	Version = "dev"
	// Commit is the short git commit hash of the build.
	Commit = "none"
	// BuildDate is the UTC build timestamp.
	BuildDate = "unknown"
)
