// Package version provides build version information for gswrap.
package version

import "runtime"

var (
	// Version is the semantic version (set by build flags).
	Version = "dev"
	// Commit is the git commit hash (set by build flags).
	Commit = "unknown"
)

// Info contains version and build information.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
}

// Get returns the version information.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns a detailed version string with build information.
func (i Info) Full() string {
	return i.Version + " (" + i.Commit + ") " + i.GoVersion + " " + i.Platform
}
