package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/openanonymiser/openanonymiser-backend/internal/app.Version=1.0.0"
// Without ldflags, Commit and BuildTime fall back to the VCS stamp go build
// embeds in the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported in startup logs and /health.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = vcsStamp(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// vcsStamp fills whichever of commit and built is still "unknown" from the
// vcs.* build settings. A dirty tree gets a "-dirty" suffix.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, vcsTime string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if commit == "unknown" && revision != "" {
		commit = revision[:min(len(revision), 12)]
		if dirty {
			commit += "-dirty"
		}
	}
	if built == "unknown" && vcsTime != "" {
		built = vcsTime
	}
	return commit, built
}
