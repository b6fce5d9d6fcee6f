package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	Environment   string
	CloudinaryURL string
	UploadDir     string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
}

var AppConfig *Config

func Load() error {
	// .env file is optional, continue without it
	_ = godotenv.Load()

	AppConfig = &Config{
		ServerPort:    getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:      getEnv("SMTP_FROM", ""),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
