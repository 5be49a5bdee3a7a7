package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	BackendBaseURL  string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	RequestTimeout  time.Duration
	GatewayTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, picking up a local
// .env file first when one exists.
func Load() *Config {
	godotenv.Load()

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 30*time.Second),
		GatewayTimeout:  getDuration("GATEWAY_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
