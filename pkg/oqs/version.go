package oqs

var (
	Version     = "v0.0.0-in-progress"
	UpstreamSHA = "unknown"
	UpstreamDir = "liboqs"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the version string reported by the default
// library's provider if available; otherwise it falls back to the pinned
// upstream commit SHA.
func UpstreamVersion() string {
	if v := Default().Version(); v != "" {
		return v
	}
	return UpstreamSHA
}
