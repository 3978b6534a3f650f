package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port            string
	DBPath          string
	GeocodingURL    string
	ForecastURL     string
	OSRMURL         string
	JWTSecret       string
	AdminSecret     string
	IntervalMinutes int           // default sampling interval along the route
	ForecastTTL     time.Duration // forecast cache freshness window
	GeocodeTTL      time.Duration // geocode cache freshness window
	WeatherWorkers  int           // concurrent weather lookups per trip
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		Port:            getEnv("PORT", ":8080"),
		DBPath:          getEnv("DB_PATH", "./data/tripcast.db"),
		GeocodingURL:    getEnv("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com"),
		ForecastURL:     getEnv("OPEN_METEO_BASE_URL", "https://api.open-meteo.com"),
		OSRMURL:         getEnv("OSRM_BASE_URL", "https://router.project-osrm.org"),
		JWTSecret:       getEnv("JWT_SECRET", "change-me-in-production"),
		AdminSecret:     getEnv("ADMIN_SECRET", ""),
		IntervalMinutes: getEnvInt("SAMPLE_INTERVAL_MINUTES", 30),
		ForecastTTL:     getEnvDuration("FORECAST_CACHE_TTL", 30*time.Minute),
		GeocodeTTL:      getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		WeatherWorkers:  getEnvInt("WEATHER_CONCURRENCY", 8),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("Invalid value for %s: %q, using default %s", key, v, fallback)
	}
	return fallback
}
