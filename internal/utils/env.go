package utils

import "os"

// GetEnvOrDefault returns the value of the environment variable, or the
// fallback when it is unset or empty.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
