package main

import (
	"log"

	"github.com/tripcast/tripcast-backend-go/internal/api"
	"github.com/tripcast/tripcast-backend-go/internal/client"
	"github.com/tripcast/tripcast-backend-go/internal/config"
	"github.com/tripcast/tripcast-backend-go/internal/database"
	"github.com/tripcast/tripcast-backend-go/internal/handler"
	"github.com/tripcast/tripcast-backend-go/internal/metrics"
	"github.com/tripcast/tripcast-backend-go/internal/repository"
	"github.com/tripcast/tripcast-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	m := metrics.NewCollector()

	forecastCache := repository.NewForecastCacheRepositoryDefault()
	geocodeCache := repository.NewGeocodeCacheRepositoryDefault()

	geocodeSvc := service.NewGeocodeService(
		client.NewGeocodeClient(cfg.GeocodingURL), geocodeCache, m, cfg.GeocodeTTL)
	weatherSvc := service.NewWeatherService(
		client.NewWeatherClient(cfg.ForecastURL), forecastCache, m, cfg.ForecastTTL, cfg.WeatherWorkers)
	tripSvc := service.NewTripService(
		geocodeSvc, client.NewRouteClient(cfg.OSRMURL), weatherSvc, m, cfg.IntervalMinutes)
	cacheSvc := service.NewCacheService(forecastCache, geocodeCache)

	router := api.SetupRouter(cfg, api.Handlers{
		Trip:    handler.NewTripHandler(tripSvc),
		Geocode: handler.NewGeocodeHandler(geocodeSvc),
		Admin:   handler.NewAdminHandler(cacheSvc, cfg.JWTSecret, cfg.AdminSecret),
	}, m)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
