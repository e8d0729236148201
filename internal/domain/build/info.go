// Package build describes the running binary.
package build

import "fmt"

// Info is filled from ldflags, or from the module build info for go install builds.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// ShortCommit trims a full revision hash to 7 characters.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String is the text printed by --version.
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, built %s, %s)", i.Version, i.ShortCommit(), i.BuildDate, i.GoVersion)
}

// UserAgent identifies tinyguard to filter list hosts.
func (i Info) UserAgent() string {
	if i.Version == "" {
		return "tinyguard"
	}
	return "tinyguard/" + i.Version
}

// RepoURL returns the project repository.
func RepoURL() string {
	return "https://github.com/bnema/tinyguard"
}
