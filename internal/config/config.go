package config

import (
	"os"
)

// Storage backends selectable at process start. The memory backend and the
// relational ones are never mixed at runtime.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
)

type Config struct {
	StorageBackend string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisHost      string
	RedisPort      string
	SessionSecret  string
	GinMode        string
	BaseURL        string
	OpenAIAPIKey   string
	SeedDemoData   bool
}

func Load() *Config {
	return &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", StorageMemory),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "roomies"),
		DBPassword:     getEnv("DB_PASSWORD", "roomies"),
		DBName:         getEnv("DB_NAME", "roomies"),
		RedisHost:      getEnv("REDIS_HOST", ""),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		SeedDemoData:   getEnv("SEED_DEMO_DATA", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
