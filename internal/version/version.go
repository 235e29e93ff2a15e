package version

// Set via -ldflags at build time.
var (
	AppName    = "Groovebox"
	AppVersion = "dev"
)
