// Package version exposes the library version reported by the CLI.
package version

// Version is the current go-calc release. Overridable at build time with
// -ldflags "-X github.com/nlstn/go-calc/internal/version.Version=...".
var Version = "0.1.0"

// String returns the version as a human-readable string.
func String() string {
	return "go-calc " + Version
}
