package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/carrierlock/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/carrierlock/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/carrierlock/internal/version.Date={{.Date}}
)

// String describes the build in one line
func String() string {
	return fmt.Sprintf("carrierlock %s (commit %s, built %s)", Version, Commit, Date)
}
