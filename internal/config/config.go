// Package config loads the server configuration from the environment.
// A .env file in the working directory is read first, explicitly set
// environment variables win.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// DBPath is the path of the SQLite database file.
	DBPath string

	// JWTSecret signs the session tokens.
	JWTSecret string

	// GeminiAPIKey authenticates against the Gemini API for receipt
	// extraction. Receipt extraction is disabled when it is empty.
	GeminiAPIKey string

	// CORSAllowOrigins are the origins allowed for cross-origin
	// requests. CORS is disabled when it is empty.
	CORSAllowOrigins []string
}

// Load reads the configuration from the environment.
func Load() Config {
	// A missing .env file is fine, everything can be set directly
	_ = godotenv.Load()

	return Config{
		DBPath:           getEnv("DB_PATH", "data/pennywise.db"),
		JWTSecret:        getEnv("JWT_SECRET", "pennywise-development-secret"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
