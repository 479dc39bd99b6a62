// Package version records build metadata injected at link time.
package version

// Set via -ldflags, e.g.
// go build -ldflags "-X github.com/doeshing/nuinit/internal/version.Version=v0.3.0".
var (
	// Version is the release version of the build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = ""
	// BuildDate is the UTC timestamp of the build.
	BuildDate = ""
)
