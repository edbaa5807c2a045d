package app

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestVCSStamp(t *testing.T) {
	t.Parallel()

	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name                 string
		settings             []debug.BuildSetting
		commit, built        string
		wantCommit, wantTime string
	}{
		{name: "fills unknowns", settings: settings, commit: "unknown", built: "unknown",
			wantCommit: "0123456789ab-dirty", wantTime: "2026-10-01T12:00:00Z"},
		{name: "ldflags win", settings: settings, commit: "abc", built: "yesterday",
			wantCommit: "abc", wantTime: "yesterday"},
		{name: "no vcs info", settings: nil, commit: "unknown", built: "unknown",
			wantCommit: "unknown", wantTime: "unknown"},
		{name: "short revision", settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			commit: "unknown", built: "unknown", wantCommit: "abc", wantTime: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			commit, built := vcsStamp(tt.settings, tt.commit, tt.built)
			if commit != tt.wantCommit || built != tt.wantTime {
				t.Errorf("vcsStamp() = (%q, %q), want (%q, %q)", commit, built, tt.wantCommit, tt.wantTime)
			}
		})
	}
}

func TestBuildVersion_StartsWithVersion(t *testing.T) {
	t.Parallel()

	if got := BuildVersion(); !strings.HasPrefix(got, Version+" (commit: ") {
		t.Errorf("BuildVersion() = %q", got)
	}
}
