package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	UploadDir   string
	BaseURL     string
	CORSOrigins []string
	LogLevel    string
}

// Load reads a .env file if present and builds the config from the
// environment. DATABASE_URL wins over the individual POSTGRES_* vars.
func Load() Config {
	_ = godotenv.Load()

	connString := getEnv("DATABASE_URL", "")
	if connString == "" {
		connString = "postgres://" + getEnv("POSTGRES_USER", "postgres") + ":" +
			getEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			getEnv("POSTGRES_HOST", "localhost") + ":" +
			getEnv("POSTGRES_PORT", "5432") + "/" +
			getEnv("POSTGRES_DB", "hopedb") + "?sslmode=disable"
	}

	return Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: connString,
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		BaseURL:     getEnv("BASE_URL", ""),
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,https://hungertohope.org")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns the value of an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
