// Package version exposes the meetxctl build version.
package version

// version is set via ldflags during release builds:
//
//	-ldflags "-X github.com/nourabuild/meetxctl/internal/version.version=v1.2.3"
var version = "local"

// Get returns the build version of meetxctl itself (not the managed
// project's version, which `meetxctl version` prints).
func Get() string {
	return version
}
