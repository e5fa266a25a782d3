package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// When empty, the API is open.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of accepted request bodies in megabytes.
	// Uploads stream through to storage, but the framework still enforces
	// this bound on the buffered multipart body.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"256"`
}

// BodyLimitBytes returns the body limit in bytes, falling back to the
// default when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	limit := c.BodyLimitMB
	if limit <= 0 {
		limit = 256
	}
	return limit * 1024 * 1024
}
