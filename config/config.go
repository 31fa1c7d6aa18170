// Package config loads host configuration from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the host settings. The query core itself needs none of
// these; they belong to the CLI and server wrappers.
type Config struct {
	DataPath string // CSV export of the ONS rent statistics
	Addr     string // listen address for --serve
}

// Load reads an optional .env file and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataPath: getEnv("POCKETRENT_DATA", "./data/rent_data.csv"),
		Addr:     getEnv("POCKETRENT_ADDR", ":8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
