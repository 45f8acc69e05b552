package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	ServerPort   string
	DatabaseDSN  string
	GeminiModel  string
	QuizSize     int
	QuizDuration time.Duration
	CorsOrigin   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		QuizSize:     getEnvInt("QUIZ_SIZE", 10),
		QuizDuration: time.Duration(getEnvInt("QUIZ_DURATION_SECONDS", 600)) * time.Second,
		CorsOrigin:   getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
