// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for solgate-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`

	// ReadTimeout bounds the time spent reading a request, including body.
	ReadTimeout time.Duration `koanf:"read_timeout"`
	// WriteTimeout bounds the time from end of request read to end of response write.
	WriteTimeout time.Duration `koanf:"write_timeout"`
	// IdleTimeout bounds how long idle keep-alive connections are held open.
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// MaxBodyBytes caps the request body size in bytes.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// CORSOrigins lists origins allowed for cross-origin requests.
	// "*" allows any origin.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
