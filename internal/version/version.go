package version

import "fmt"

// Set at build time with -ldflags "-X dietinterp/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("diet-interp %s (commit=%s, date=%s)", Version, Commit, Date)
}
