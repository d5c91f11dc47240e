package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the invocation harness configuration loaded from environment
// variables. The conversion packages themselves read no configuration.
type Config struct {
	Invocations int
	Workers     int
	LogLevel    string
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Invocations: getEnvInt("HARNESS_INVOCATIONS", 10),
		Workers:     getEnvInt("HARNESS_WORKERS", 5),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// Debug reports whether per-payload logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
