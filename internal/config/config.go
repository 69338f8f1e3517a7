package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs, loaded once in main and injected
// into the components that use it. Nothing reads the environment after Load.
type Config struct {
	Port          string
	PublicBaseURL string

	// Storage
	StorageBackend string // "disk" or "s3"
	UploadsDir     string
	BodyLimit      int

	// Redis (optional; empty addr disables the cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AllowedOrigins string
}

func Load() (*Config, error) {
	// Missing .env is fine; system env still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           envString("PORT", "8080"),
		PublicBaseURL:  envString("PUBLIC_BASE_URL", ""),
		StorageBackend: envString("STORAGE_BACKEND", "disk"),
		UploadsDir:     envString("UPLOADS_DIR", "static/uploads"),
		RedisAddr:      envString("REDIS_ADDR", ""),
		RedisPassword:  envString("REDIS_PASSWORD", ""),
		AllowedOrigins: envString("ALLOWED_ORIGINS", "*"),
	}

	var err error
	if cfg.BodyLimit, err = envInt("BODY_LIMIT", 8*1024*1024); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.StorageBackend != "disk" && cfg.StorageBackend != "s3" {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q (want disk or s3)", cfg.StorageBackend)
	}

	return cfg, nil
}

func envString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %v", key, err)
	}
	return n, nil
}
