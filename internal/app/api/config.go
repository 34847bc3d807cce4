package api

import (
	"fmt"
	"os"
	"strings"
)

// Store backend names accepted by STORE_BACKEND.
const (
	BackendAuto     = "auto"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port          string
	StoreBackend  string
	MongoURI      string
	MongoDatabase string
	PostgresDSN   string
	Environment   string
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:          envDefault("PORT", "8080"),
		StoreBackend:  strings.ToLower(envDefault("STORE_BACKEND", BackendAuto)),
		MongoURI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase: strings.TrimSpace(os.Getenv("MONGO_DATABASE")),
		PostgresDSN:   strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		Environment:   envDefault("ENVIRONMENT", "local"),
	}
	switch cfg.StoreBackend {
	case BackendAuto, BackendMongo, BackendPostgres, BackendMemory:
	default:
		return Config{}, fmt.Errorf("STORE_BACKEND must be one of auto, mongo, postgres, memory")
	}
	if cfg.StoreBackend == BackendMongo && cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("STORE_BACKEND=mongo requires MONGO_URI")
	}
	if cfg.StoreBackend == BackendPostgres && cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("STORE_BACKEND=postgres requires POSTGRES_DSN")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
