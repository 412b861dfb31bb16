package version

import "fmt"

var (
	// Version is set at build time
	Version = "dev"
	// GitCommit is set at build time
	GitCommit = ""
)

func String() string {
	if GitCommit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
