// Package buildinfo reports the version of the running binary.
//
// Release builds set the variables with -ldflags:
//
//	-X github.com/matzehuels/tierpyramid/pkg/buildinfo.Version=v1.0.0
//	-X github.com/matzehuels/tierpyramid/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)
//	-X github.com/matzehuels/tierpyramid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
//
// `go install` builds fall back to the module version and VCS stamp that
// the toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = s.Value
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

// String returns version, commit and date on separate lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}

// UserAgent identifies the server in response headers.
func UserAgent() string {
	return "tierpyramid/" + Version
}
