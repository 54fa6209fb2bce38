package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AdminSettingsOwner is the sentinel owner all settings collapse to when the
// admin-only flag is enabled.
const AdminSettingsOwner = "admin"

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// AdminOnlySettings reports whether settings management is restricted to
// administrators. When enabled, every read and update resolves to the shared
// record owned by AdminSettingsOwner.
func AdminOnlySettings() bool {
	return GetBoolEnv("SETTINGS_ADMIN_ONLY", false)
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
