package app

// Build metadata, overridden at link time via -ldflags.
var (
	Version   = "dev"
	GitTag    = ""
	BuildTime = ""
)
