// Package config loads runtime settings for the backend service.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime settings for the apparel backend.
//
// Fields:
//   - Port: HTTP listening port.
//   - DatabaseURL: PostgreSQL connection string. Empty or unreachable means
//     the service starts in degraded mode.
//   - AllowedOrigins: CORS origins accepted by the API.
//   - BodyLimitBytes: cap on JSON request bodies. Orders may carry design
//     data or embedded images in demo setups; production should upload large
//     files to object storage and send references instead.
//   - APIBaseURLs: candidate backend base URLs probed by the API client.
type Config struct {
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
	BodyLimitBytes int64
	APIBaseURLs    []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Port = "8189"
	c.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	c.BodyLimitBytes = 5 << 20 // 5MiB
	c.APIBaseURLs = []string{"http://localhost:8189"}
}

// Load constructs a Config, applies defaults, then overlays values from
// environment variables. Later sources take precedence over earlier ones.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("JSON_BODY_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.BodyLimitBytes = n
		}
	}
	if v := os.Getenv("API_BASE_URLS"); v != "" {
		cfg.APIBaseURLs = splitCSV(v)
	}
	return cfg
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
