// Package gnparks contains the top-level contracts of the GNparks
// dashboard and its version information.
package gnparks

var (
	// Version of GNparks, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
