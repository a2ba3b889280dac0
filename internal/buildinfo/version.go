// Package buildinfo holds values stamped into the binary with -ldflags -X.
//
//	go build -ldflags "-X github.com/YoshitsuguKoike/helloworld/internal/buildinfo.Version=v1.0.0 \
//	  -X github.com/YoshitsuguKoike/helloworld/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

var (
	// Version is the release version, "dev" for local builds
	Version = "dev"
	// Commit is the short source revision, empty when not stamped
	Commit = ""
)

// GetVersion returns the current version, with "dev" as default for development builds
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// Summary returns the version followed by the commit when one was stamped
func Summary() string {
	if Commit == "" {
		return GetVersion()
	}
	return GetVersion() + " (" + Commit + ")"
}
