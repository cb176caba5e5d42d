package config

import "os"

// Config holds the runtime configuration for the gateway. Values are sourced
// from environment variables with defaults matching the docker-compose layout
// of the monitoring stack.
type Config struct {
	// RedisURL is the cache store connection target.
	RedisURL string

	// UserServiceURL is the base URL of the user service (system of record
	// for accounts, monitor definitions and incidents).
	UserServiceURL string

	// ListenAddr is the address the gateway binds to.
	ListenAddr string

	// WebDir optionally points at built dashboard assets to serve at /.
	// Empty disables static serving.
	WebDir string
}

// Load reads configuration from environment variables and applies defaults.
func Load() *Config {
	return &Config{
		RedisURL:       getenv("PULSEGATE_REDIS_URL", "redis://localhost:6379"),
		UserServiceURL: getenv("PULSEGATE_USER_SERVICE_URL", "http://localhost:5000"),
		ListenAddr:     getenv("PULSEGATE_LISTEN_ADDR", ":3000"),
		WebDir:         getenv("PULSEGATE_WEB_DIR", ""),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
