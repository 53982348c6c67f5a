// Package config loads process settings from defaults, an optional TOML
// file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integer values.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
