package version

// Version information for the gonodal CLI.
var (
	Version = "0.1.0"
	Year    = "2026"
	Author  = "petrolab"
)
