package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBackendURL targets a local data backend for development. The
// production deployment sets BACKEND_URL to the hosted API.
const (
	DefaultBackendURL    = "http://localhost:8030"
	ProductionBackendURL = "https://api.taifa-fiala.net"
)

type Config struct {
	Port        string
	BackendURL  string
	DatabaseURL string

	// PollInterval controls how often the ETL monitor refreshes status.
	PollInterval time.Duration

	CORSOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		BackendURL:   strings.TrimRight(getenv("BACKEND_URL", DefaultBackendURL), "/"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		PollInterval: 30 * time.Second,
	}

	if raw := strings.TrimSpace(os.Getenv("ETL_POLL_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.PollInterval = time.Duration(secs) * time.Second
		}
	}

	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg
}

// BackendConfigured reports whether a usable backend base URL is set.
// An empty or placeholder value puts the explore page into degraded
// mode instead of failing outright.
func (c Config) BackendConfigured() bool {
	u := strings.TrimSpace(c.BackendURL)
	return u != "" && u != "https://your-backend.example.com"
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
