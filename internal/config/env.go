package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the environment variable's value, or defaultValue
// when unset or empty.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvInt parses the environment variable as an integer. Unparseable
// values log a warning and fall back to defaultValue.
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", defaultValue),
		)
		return defaultValue
	}
	return v
}

// GetEnvBool parses the environment variable as a boolean, accepting the
// forms strconv.ParseBool does (1, t, true, 0, f, false).
func GetEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Bool("default", defaultValue),
		)
		return defaultValue
	}
	return v
}

// GetEnvDuration parses the environment variable as a time.Duration.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("invalid duration environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Duration("default", defaultValue),
		)
		return defaultValue
	}
	return v
}
