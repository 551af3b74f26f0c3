// Package version provides build and version information.
package version

// Version is the current application version.
// Overridden at build time with -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0"
