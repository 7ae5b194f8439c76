package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every environment-sourced setting the application needs.
type Config struct {
	Port string

	Database DatabaseConfig

	BackendURL  string
	FrontendURL string

	GoogleAuthClientID     string
	GoogleAuthClientSecret string

	// Newly federated users are created active only when this is set.
	UserAutoApproval bool

	AIProvider    string // "openai" or "gemini"
	ChatGPTAPIKey string
	GeminiAPIKey  string

	MaptilerAPIKey string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads configuration from the environment, with .env support.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &Config{
		Port: getEnv("PORT", "8888"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "mapsplanner"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		BackendURL:             getEnv("BACKEND_URL", "http://localhost:8888"),
		FrontendURL:            getEnv("FRONTEND_URL", "http://localhost:3000"),
		GoogleAuthClientID:     os.Getenv("GOOGLE_AUTH_CLIENT_ID"),
		GoogleAuthClientSecret: os.Getenv("GOOGLE_AUTH_CLIENT_SECRET"),
		UserAutoApproval:       getBoolEnv("USER_AUTO_APPROVAL", false),
		AIProvider:             getEnv("AI_PROVIDER", "openai"),
		ChatGPTAPIKey:          os.Getenv("CHATGPT_API_KEY"),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		MaptilerAPIKey:         os.Getenv("MAPTILER_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using default", key, value)
		return fallback
	}
	return parsed
}
