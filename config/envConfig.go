package config

import "os"

// GetEnv reads an environment variable. godotenv loads .env once in main,
// so plain os.Getenv is enough here.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault falls back to a default for optional settings.
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
