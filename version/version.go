// Package version holds build information injected at link time.
package version

import "runtime"

// Populated via -ldflags at release build time:
//
//	-X github.com/servline/menuscan/version.GitRelease=v0.1.0
var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
	GoInfo        = runtime.Version()
)
