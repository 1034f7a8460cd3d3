// Package config loads storefront runtime settings from the environment.
// A .env file in the working directory is read first when present; real
// environment variables always win over it.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for the per-client persisted store
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds all runtime configuration values
type Config struct {
	Port     string
	LogLevel string

	StorageBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// DatabaseURL selects the Postgres backend. Empty means the seeded in-memory backend.
	DatabaseURL    string
	MigrationsPath string

	JWTSecret      string
	AccessTokenTTL time.Duration
	BcryptCost     int

	RequestTimeout time.Duration
	PersistTimeout time.Duration
	BidIncrement   float64
}

// Load reads configuration values, falling back to development defaults
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           port(envStr("PORT", "8080")),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		StorageBackend: strings.ToLower(envStr("STORAGE_BACKEND", StorageMemory)),
		RedisAddr:      envStr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        envInt("REDIS_DB", 0),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: envStr("MIGRATIONS_PATH", "./internal/repository/migrations"),
		JWTSecret:      envStr("JWT_SECRET", "storefront-dev-secret"),
		AccessTokenTTL: envDur("ACCESS_TOKEN_TTL", time.Hour),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		RequestTimeout: envDur("REQUEST_TIMEOUT", 10*time.Second),
		PersistTimeout: envDur("PERSIST_TIMEOUT", time.Second),
		BidIncrement:   envFloat("BID_INCREMENT", 10),
	}
}

// port accepts "8080" or ":8080"
func port(p string) string {
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envFloat(k string, d float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
		return f
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil && dur > 0 {
		return dur
	}
	return d
}
