// Package buildinfo exposes version metadata stamped at build time.
//
// Release builds override the variables via -ldflags -X; a plain `go build`
// reports the dev defaults.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the one-line version summary.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Template returns the cobra version template, folding the commit and build
// date under the version line.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
