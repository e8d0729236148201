package main

import (
	"runtime"
	"runtime/debug"

	"github.com/bnema/tinyguard/internal/cli/cmd"
	"github.com/bnema/tinyguard/internal/domain/build"
)

// Set by the release build through -ldflags "-X main.version=...".
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(buildInfo())
	cmd.Execute()
}

// buildInfo falls back to the VCS stamp when ldflags were not set.
func buildInfo() build.Info {
	info := build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == "unknown":
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.BuildDate == "unknown":
			info.BuildDate = s.Value
		}
	}
	return info
}
