package version

// Version information set at build time
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/liblift/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/liblift/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/liblift/internal/version.Date={{.Date}}
)
