package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/hyperifyio/quizexport/internal/app.BuildVersion=..."
var (
	BuildVersion = ""
	BuildCommit  = ""
)

// Version describes the running binary. Values stamped at link time win;
// otherwise the module version and VCS revision recorded by `go install`
// are used.
func Version() string {
	version, commit := BuildVersion, BuildCommit
	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "" && info.Main.Version != "" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && commit == "" {
				commit = s.Value
			}
		}
	}
	if version == "" {
		version = "(devel)"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		return "quizexport " + version
	}
	return fmt.Sprintf("quizexport %s (%s)", version, commit)
}
