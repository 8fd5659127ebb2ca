package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration for the storefront.
type Config struct {
	Port string
	Env  string

	MongoURL string
	MongoDB  string

	// RedisURL may be empty; the session cart then falls back to in-memory
	// storage and does not survive restarts.
	RedisURL string
	CartTTL  time.Duration

	// KafkaBrokers may be empty; order events are then not published.
	KafkaBrokers []string
	KafkaTopic   string

	// Base URLs the session-side clients talk to. They default to this
	// process's own API so a single binary serves the whole storefront.
	CatalogBaseURL string
	OrderBaseURL   string
}

func LoadConfig() (*Config, error) {
	// Optional .env, system environment wins.
	_ = godotenv.Load()

	port := getEnv("PORT", "5000")
	selfURL := fmt.Sprintf("http://localhost:%s", port)

	cfg := &Config{
		Port:           port,
		Env:            getEnv("ENV", "development"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "jotech"),
		RedisURL:       os.Getenv("REDIS_URL"),
		CartTTL:        time.Hour * 24 * 7,
		KafkaTopic:     getEnv("ORDER_EVENTS_TOPIC", "order.created"),
		CatalogBaseURL: getEnv("CATALOG_URL", selfURL),
		OrderBaseURL:   getEnv("ORDER_URL", selfURL),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.MongoDB == "" {
		return nil, fmt.Errorf("MONGO_DB is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
