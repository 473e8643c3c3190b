package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultCORSOrigins are the local frontend origins allowed out of the box.
var DefaultCORSOrigins = []string{
	"http://localhost:3000", // Local frontend testing
	"http://localhost:5500", // Live Server (VS Code)
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5500",
}

type Config struct {
	// Web Server
	Port        string
	WebBind     string
	CORSOrigins []string

	// Street View signing. Both may be empty; the service still runs and
	// reports the missing secret when a signed URL is requested.
	MapsAPIKey        string
	MapsSigningSecret string

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		// 5000 is often taken by the macOS AirPlay receiver
		Port:              getEnvDefault("PORT", "5001"),
		MapsAPIKey:        os.Getenv("GOOGLE_MAPS_API_KEY"),
		MapsSigningSecret: os.Getenv("GOOGLE_MAPS_SIGNING_SECRET"),
		CORSOrigins:       splitList(getEnvDefault("CORS_ORIGINS", strings.Join(DefaultCORSOrigins, ","))),
		LogLevel:          getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvDefault("LOG_FORMAT", "json"),
		LogFile:           os.Getenv("LOG_FILE"),
	}
	cfg.WebBind = getEnvDefault("WEB_BIND", net.JoinHostPort("0.0.0.0", cfg.Port))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that configuration fields are sane. Secrets are optional.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT must be 1-65535, got %q", c.Port))
	}
	if _, _, err := net.SplitHostPort(c.WebBind); err != nil {
		errs = append(errs, fmt.Sprintf("WEB_BIND must be host:port, got %q", c.WebBind))
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL is not a known level: %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// StreetViewConfigured reports whether both signing secrets are set.
func (c *Config) StreetViewConfigured() bool {
	return c.MapsAPIKey != "" && c.MapsSigningSecret != ""
}

// Redacted returns a copy that is safe to log.
func (c Config) Redacted() Config {
	if c.MapsAPIKey != "" {
		c.MapsAPIKey = "***"
	}
	if c.MapsSigningSecret != "" {
		c.MapsSigningSecret = "***"
	}
	return c
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
