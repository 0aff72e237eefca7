// Package buildinfo carries version metadata injected with -ldflags -X.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("rzero %s (commit=%s, date=%s)", Version, Commit, Date)
}
