package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	Env      string
	LogLevel slog.Level

	DefaultLength int
	MaxLength     int
	MaxCount      int
	MaxDraws      int
	MaxAssemblies int

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnvLevel("LOG_LEVEL", slog.LevelInfo),

		DefaultLength: getEnvInt("DEFAULT_LENGTH", 8),
		MaxLength:     getEnvInt("MAX_LENGTH", 128),
		MaxCount:      getEnvInt("MAX_COUNT", 50),
		MaxDraws:      getEnvInt("MAX_DRAWS", 10000),
		MaxAssemblies: getEnvInt("MAX_ASSEMBLIES", 1000),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		slog.Warn("invalid log level in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return level
}
