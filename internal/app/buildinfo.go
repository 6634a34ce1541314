package app

import "github.com/carlmjohnson/versioninfo"

// Build information populated via -ldflags at build time. When left at the
// defaults, Version falls back to the module and VCS data embedded by the Go
// toolchain.
var (
	BuildVersion = "0.0.0-dev"
	BuildCommit  = "unknown"
	BuildDate    = "unknown"
)

// Version returns a one-line version string for -version output.
func Version() string {
	version, commit, date := BuildVersion, BuildCommit, BuildDate
	if version == "0.0.0-dev" && versioninfo.Version != "unknown" && versioninfo.Version != "(devel)" {
		version = versioninfo.Version
	}
	if commit == "unknown" {
		commit = versioninfo.Short()
	}
	if date == "unknown" && !versioninfo.LastCommit.IsZero() {
		date = versioninfo.LastCommit.UTC().Format("2006-01-02T15:04:05Z")
	}
	return "devextract " + version + " (" + commit + ", " + date + ")"
}
