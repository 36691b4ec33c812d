package config

import (
	"os"
	"time"
)

type Config struct {
	Port           string
	Timezone       string
	SeedFile       string
	AllowedOrigins string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		Timezone:       getEnv("TZ", "Asia/Bangkok"),
		SeedFile:       getEnv("SEED_FILE", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
	}
}

// Location resolves the configured timezone, falling back to a fixed
// UTC+7 zone when tzdata is unavailable.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
