// Package version exposes the build version of vermanip.
package version

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/indaco/vermanip/internal/version.Version=1.2.3"
var Version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return Version
}
