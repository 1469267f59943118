// Package config holds the configuration of the product API.
package config

import (
	"strings"
	"time"

	"github.com/abgdnv/productapi/pkg/config"
	"github.com/abgdnv/productapi/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Auth       config.AuthConfig      `koanf:"auth"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
	Metrics    config.MetricsConfig   `koanf:"metrics"`
	Telemetry  config.TelemetryConfig `koanf:"telemetry"`
	NATS       config.NATSConfig      `koanf:"nats"`
}

// Defaults lets the service start with no config file and no environment.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":               3000,
		"server.maxHeaderBytes":     1 << 20,
		"server.timeout.read":       5 * time.Second,
		"server.timeout.write":      10 * time.Second,
		"server.timeout.idle":       60 * time.Second,
		"server.timeout.readHeader": 2 * time.Second,

		"auth.apiKey": "my-secret-key",
		"auth.header": "x-api-key",

		"log.level": "info",

		"pprof.enabled": false,
		"pprof.addr":    "localhost:6060",

		"shutdown.timeout": 10 * time.Second,

		"metrics.enabled": true,
		"metrics.path":    "/metrics",

		"telemetry.enabled":                  false,
		"telemetry.traces.otlphttp.endpoint": "localhost:4318",
		"telemetry.traces.otlphttp.insecure": true,
		"telemetry.traces.otlphttp.timeout":  5 * time.Second,

		"nats.enabled": false,
		"nats.url":     "nats://localhost:4222",
		"nats.timeout": 5 * time.Second,
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.Auth.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	b.WriteString(c.Metrics.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.NATS.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	validators := []configloader.Validator{
		&c.HTTPServer,
		&c.Auth,
		&c.Log,
		&c.PProf,
		&c.Shutdown,
		&c.Metrics,
		&c.Telemetry,
		&c.NATS,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
