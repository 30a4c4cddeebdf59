package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendBaseURL string
	// BackendTimeout bounds a single generate call; zero waits on the request context only.
	BackendTimeout time.Duration
	LogLevel       string
	SessionTTL     time.Duration
	ErrorTTL       time.Duration
	SessionCookie  string
	UploadMaxBytes int64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		BackendBaseURL: strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:5000"), "/"),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 0),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 30*time.Minute),
		ErrorTTL:       getEnvDuration("ERROR_TTL", 6*time.Second),
		SessionCookie:  getEnv("SESSION_COOKIE", "resume_session"),
		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 15<<20)),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}
