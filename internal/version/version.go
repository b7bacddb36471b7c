// Package version holds build metadata set via -ldflags.
package version

// Set with -ldflags "-X github.com/mj1618/taskbar-embed/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
