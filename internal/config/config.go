package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Metrics   MetricsConfig
	RateLimit RateLimitConfig
	AdminKey  string
	APIKey    string
	CORS      string
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	// URL is the Postgres DSN for the durable status ledger.
	// The ledger is disabled when empty.
	URL string
}

type RedisConfig struct {
	// URL selects the Redis broadcaster for cross-module signals.
	// The in-process broadcaster is used when empty.
	URL string
}

type MetricsConfig struct {
	Port string
}

type RateLimitConfig struct {
	WriteMax      int
	WindowSeconds int
}

func Load() *Config {
	writeMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_TX_MAX", "60"))
	window, _ := strconv.Atoi(getEnv("RATE_LIMIT_TX_WINDOW_SECONDS", "60"))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "dev"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Metrics: MetricsConfig{
			Port: getEnv("METRICS_PORT", "9090"),
		},
		RateLimit: RateLimitConfig{
			WriteMax:      writeMax,
			WindowSeconds: window,
		},
		AdminKey: os.Getenv("ADMIN_KEY"),
		APIKey:   os.Getenv("API_KEY"),
		CORS:     getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
