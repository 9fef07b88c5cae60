package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	// CORS origin returned on API responses ("*" allows any caller)
	CORSAllowedOrigin string

	// Email (Amazon SES) settings; invitations are disabled when
	// SESFromEmail is empty
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	// A missing .env file is the normal case
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "8000"),
		DatabaseType:      getEnv("DB_TYPE", "sqlite"),
		DatabasePath:      getEnv("DB_PATH", "./littleyears.db"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "Little Years"),
		AppBaseURL:        getEnv("APP_BASE_URL", "http://localhost:8000"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
