// Package version holds the application version, overridable at build time.
package version

// Version is set via -ldflags "-X sentsei/internal/version.Version=x.y.z".
var Version = "1.0.0"
