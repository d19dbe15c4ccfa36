// Package config loads application configuration from the environment, with a
// .env file as an optional local-development convenience.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Database holds PostgreSQL connection settings.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Notify holds notification provider credentials and owner contact defaults.
// Empty provider credentials disable the corresponding channel.
type Notify struct {
	ResendAPIKey string
	ResendFrom   string
	TwilioSID    string
	TwilioToken  string
	TwilioFrom   string
	OwnerEmail   string
	OwnerPhone   string
}

// Config is the full application configuration.
type Config struct {
	Port        string
	Environment string
	AdminSecret string
	SeedOnStart bool
	Database    Database
	Notify      Notify
}

// Load reads configuration from the environment. A missing .env file is not
// an error; real deployments set variables directly.
func Load() *Config {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env file")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		AdminSecret: os.Getenv("ADMIN_SECRET"),
		SeedOnStart: getEnv("RUN_SEED_ON_STARTUP", "true") != "false",
		Database: Database{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "detailing"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Notify: Notify{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			ResendFrom:   getEnv("RESEND_FROM_EMAIL", "Quality Detailing <onboarding@resend.dev>"),
			TwilioSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			TwilioFrom:   os.Getenv("TWILIO_FROM_NUMBER"),
			OwnerEmail:   getEnv("OWNER_EMAIL", "smlalene@gmail.com"),
			OwnerPhone:   getEnv("OWNER_PHONE", "7024707392"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
