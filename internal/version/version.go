// Package version reports the entryline build version.
package version

import (
	"runtime/debug"
	"strings"
)

// version is set at build time with
//
//	-ldflags "-X github.com/indaco/entryline/internal/version.version=1.0.0"
var version = ""

// GetVersion returns the build version without a leading "v".
// It falls back to the module version recorded by the Go toolchain, then to
// "dev".
func GetVersion() string {
	if version != "" {
		return strings.TrimPrefix(version, "v")
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "dev"
}
