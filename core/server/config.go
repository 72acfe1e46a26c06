package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitBytes caps the size of request bodies submitted for binding.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"1048576"`
	// ReadTimeout bounds reading a full request.
	ReadTimeout time.Duration `mapstructure:"read_timeout" default:"10s"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
