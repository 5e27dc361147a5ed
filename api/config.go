package api

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds server configuration.
type Config struct {
	Port           int           `env:"FORMPRICING_PORT" envDefault:"8080"`
	ReadTimeout    time.Duration `env:"FORMPRICING_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout   time.Duration `env:"FORMPRICING_WRITE_TIMEOUT" envDefault:"60s"`
	MaxRequestSize int64         `env:"FORMPRICING_MAX_REQUEST_SIZE" envDefault:"1048576"`
	CORSOrigins    []string      `env:"FORMPRICING_CORS_ORIGINS" envDefault:"*" envSeparator:","`
	APIKey         string        `env:"FORMPRICING_API_KEY"`
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxRequestSize: 1 << 20,
		CORSOrigins:    []string{"*"},
	}
}

// ConfigFromEnv builds a Config from FORMPRICING_* environment variables,
// falling back to the defaults above.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
