package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// App holds process-level settings read from the environment.
type App struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
}

// Load reads .env (if present) and validates required variables.
func Load() *App {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := &App{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is required in .env or environment")
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	cfg.CORSOrigins = []string{origins}

	return cfg
}
