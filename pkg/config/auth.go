package config

import (
	"fmt"
	"strings"
)

// AuthConfig holds the shared API key and the header it is read from.
type AuthConfig struct {
	APIKey string `koanf:"apiKey"`
	Header string `koanf:"header"`
}

// String returns a string representation of the auth configuration. The key is masked.
func (c *AuthConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  apiKey: %s\n", maskSecret(c.APIKey)))
	b.WriteString(fmt.Sprintf("  header: %s\n", c.Header))
	return b.String()
}

func (c *AuthConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is not configured")
	}
	if c.Header == "" {
		return fmt.Errorf("API key header is not configured")
	}
	return nil
}

func maskSecret(secret string) string {
	if secret == "" {
		return "<not configured>"
	}
	return "****"
}
