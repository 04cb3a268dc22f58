// Package config provides small environment-variable helpers for the
// composition roots. Values come from the process environment, optionally
// preloaded from a .env file by the caller.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Get returns the environment value for key, or fallback when unset/blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the integer environment value for key, or fallback when
// unset or unparseable.
func GetInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetFloat returns the float environment value for key, or fallback when
// unset or unparseable.
func GetFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
