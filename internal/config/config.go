package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RatesAPIURL  string
	KafkaBrokers string
	RateTopic    string
	Port         string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env not loaded (ok for prod)")
	}
	return &Config{
		RatesAPIURL:  getEnv("RATES_API_URL", "https://open.er-api.com/v6/latest/USD"),
		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
		RateTopic:    getEnv("RATE_KAFKA_TOPIC", "rate-updates"),
		Port:         getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
