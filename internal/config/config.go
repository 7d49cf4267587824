package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Retrieval RetrievalConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	FaqEmbedTopic      string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret    string
	JwtAlgorithm string
	JwtTTL       time.Duration
	// AdminEmails holds the lower-cased admin allow-list. Admin-hood is
	// derived from this set on every check, never persisted.
	AdminEmails []string
}

type RetrievalConfig struct {
	EmbeddingBaseURL    string
	EmbeddingModel      string
	TopK                int
	ConfidenceThreshold float64
	Timeout             time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			FaqEmbedTopic:      getEnv("EMBED_FAQ_ENTRY_TOPIC_NAME", "EMBED_FAQ_ENTRY"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:    getEnv("JWT_SECRET", "change-me-in-prod"),
			JwtAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
			JwtTTL:       time.Duration(getEnvAsInt("JWT_EXP_MINUTES", 60)) * time.Minute,
			AdminEmails:  splitEmails(getEnv("ADMIN_EMAILS", "")),
		},
		Retrieval: RetrievalConfig{
			EmbeddingBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingModel:      getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			TopK:                getEnvAsInt("RETRIEVAL_TOP_K", 5),
			ConfidenceThreshold: getEnvAsFloat("RETRIEVAL_CONFIDENCE_THRESHOLD", 0.25),
			Timeout:             time.Duration(getEnvAsInt("RETRIEVAL_TIMEOUT_SECONDS", 15)) * time.Second,
		},
	}
}

func splitEmails(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			emails = append(emails, p)
		}
	}
	return emails
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
