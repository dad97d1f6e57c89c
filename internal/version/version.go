// Package version provides version information for fresh-maven-project.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// ProgramName is the name shown in the version banner.
const ProgramName = "Fresh Maven Project"

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// Banner returns the one-line banner printed by -V.
func (i Info) Banner() string {
	return fmt.Sprintf("%s %s", ProgramName, i.Version)
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("%s\n  Commit:  %s\n  Built:   %s\n  Go:      %s",
		i.Banner(), i.GitCommit, i.BuildDate, i.GoVersion)
}
