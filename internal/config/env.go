package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr      string
	GinMode      string
	DBUser       string
	DBPassword   string
	DBHost       string
	DBName       string
	JWTSecret    string
	TokenTTL     time.Duration
	GatewayDelay time.Duration
}

// LoadEnv reads configuration from the environment, loading a local .env
// first when present.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	env := Env{
		AppAddr:      getenv("APP_ADDR", ":8080"),
		GinMode:      getenv("GIN_MODE", ""),
		DBUser:       getenv("DB_USER", "root"),
		DBPassword:   getenv("DB_PASSWORD", ""),
		DBHost:       getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:       getenv("DB_NAME", "wanderstay"),
		JWTSecret:    getenv("JWT_SECRET", "super-secret-key-change-me"),
		TokenTTL:     24 * time.Hour,
		GatewayDelay: time.Second,
	}
	return env
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
