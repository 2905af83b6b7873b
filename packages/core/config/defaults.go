package config

const (
	// PoweredByHeader identifies veryhttp on every outgoing request
	PoweredByHeader = "X-Powered-By"
	// PoweredByValue is the value sent in PoweredByHeader
	PoweredByValue = "veryhttp"
	// DefaultMaxRedirects matches the http package default
	DefaultMaxRedirects = 10
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout:         0, // no timeout
		FollowRedirects: BoolPtr(true),
		MaxRedirects:    DefaultMaxRedirects,
		Proxy:           "",
		RequestID:       BoolPtr(false),
		NoColor:         BoolPtr(false),
		Headers:         nil,
	}
}

// UserAgent returns the User-Agent sent by the given build.
func UserAgent(version string) string {
	return "veryhttp/" + version
}

// DefaultHeaders returns the identifying headers attached to every request.
func DefaultHeaders(version string) map[string]string {
	return map[string]string{
		PoweredByHeader: PoweredByValue,
		"User-Agent":    UserAgent(version),
	}
}
