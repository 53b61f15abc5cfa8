package dockerfx

import (
	"time"
)

// Config holds the configuration for the Docker client. Zero values fall back
// to the Docker environment defaults (DOCKER_HOST and friends).
type Config struct {
	// Host is the Docker daemon address, e.g. "unix:///var/run/docker.sock"
	// or "tcp://127.0.0.1:2376". Empty means the environment default.
	Host string

	// APIVersion pins the API version. Empty negotiates with the daemon.
	APIVersion string

	// Timeout applies to every Docker API request. Defaults to 30 seconds.
	Timeout time.Duration

	// TLSEnabled enables TLS for the connection.
	TLSEnabled bool

	// TLSConfig is only used when TLSEnabled is true.
	TLSConfig TLSConfig
}

// TLSConfig holds the certificate paths for a TLS connection.
type TLSConfig struct {
	CAFile   string
	CertFile string
	KeyFile  string
}

// DefaultConfig returns a default configuration for the Docker client.
func DefaultConfig() Config {
	//nolint:exhaustruct //default values
	return Config{
		Timeout: 30 * time.Second,
	}
}
