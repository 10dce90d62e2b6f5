// Package buildinfo holds values set at link time via -ldflags.
package buildinfo

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
