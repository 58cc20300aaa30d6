// Package version holds the build version, overridable with -ldflags.
package version

// Version is the current release tag.
var Version = "v0.1.0"
