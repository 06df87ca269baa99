package meta

import (
	"os"
	"strconv"
)

// The binaries read SPLENDOR_-prefixed variables as fallbacks for their
// flags; a value that does not parse falls back to the default.

func EnvString(key, def string) string {
	if v := os.Getenv("SPLENDOR_" + key); v != "" {
		return v
	}
	return def
}

func EnvInt(key string, def int) int {
	if v := os.Getenv("SPLENDOR_" + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func EnvUint(key string, def uint64) uint64 {
	if v := os.Getenv("SPLENDOR_" + key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return def
}

func EnvFloat(key string, def float64) float64 {
	if v := os.Getenv("SPLENDOR_" + key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
