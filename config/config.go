package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttlHours, err := strconv.Atoi(get("TOKEN_TTL_HOURS", "168"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 168 // 7 days
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "farmlog.db"),
		JWTSecret: get("JWT_SECRET", ""),
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
		log.Printf("[cfg] JWT_SECRET not set, using dev default")
	}
	log.Printf("[cfg] port=%s db=%s ttl=%s", cfg.Port, cfg.DBPath, cfg.TokenTTL)
	return cfg
}
