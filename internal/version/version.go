// Package version provides build information for tmux-toaster.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version, Commit and Date are set at build time via ldflags.
var (
	Version = "development"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version including the commit hash if available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// Info returns a multi-line description used by the version command.
func Info() string {
	commit, date := Commit, Date
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = s.Value
			case s.Key == "vcs.time" && date == "unknown":
				date = s.Value
			}
		}
	}
	return fmt.Sprintf("tmux-toaster %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, commit, date, runtime.Version())
}
