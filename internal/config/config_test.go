package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != ":8080" {
		t.Errorf("Port = %q, want :8080", cfg.Port)
	}
	if cfg.IntervalMinutes != 30 {
		t.Errorf("IntervalMinutes = %d, want 30", cfg.IntervalMinutes)
	}
	if cfg.ForecastTTL != 30*time.Minute {
		t.Errorf("ForecastTTL = %s, want 30m", cfg.ForecastTTL)
	}
	if cfg.WeatherWorkers != 8 {
		t.Errorf("WeatherWorkers = %d, want 8", cfg.WeatherWorkers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("SAMPLE_INTERVAL_MINUTES", "15")
	t.Setenv("FORECAST_CACHE_TTL", "1h")
	t.Setenv("WEATHER_CONCURRENCY", "bogus")

	cfg := Load()

	if cfg.Port != ":9090" {
		t.Errorf("Port = %q, want :9090", cfg.Port)
	}
	if cfg.IntervalMinutes != 15 {
		t.Errorf("IntervalMinutes = %d, want 15", cfg.IntervalMinutes)
	}
	if cfg.ForecastTTL != time.Hour {
		t.Errorf("ForecastTTL = %s, want 1h", cfg.ForecastTTL)
	}
	if cfg.WeatherWorkers != 8 {
		t.Errorf("invalid WEATHER_CONCURRENCY should fall back to 8, got %d", cfg.WeatherWorkers)
	}
}
