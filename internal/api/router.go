package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripcast/tripcast-backend-go/internal/config"
	"github.com/tripcast/tripcast-backend-go/internal/handler"
	"github.com/tripcast/tripcast-backend-go/internal/metrics"
	"github.com/tripcast/tripcast-backend-go/internal/middleware"
)

// Handlers bundles the HTTP handlers the router wires up
type Handlers struct {
	Trip    *handler.TripHandler
	Geocode *handler.GeocodeHandler
	Admin   *handler.AdminHandler
}

// SetupRouter assembles the gin engine
func SetupRouter(cfg *config.Config, h Handlers, m *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the map frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Tripcast API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/geocode", h.Geocode.Search)
		api.POST("/trips/plan", h.Trip.PlanTrip)
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/auth/login", h.Admin.Login)

		protected := admin.Group("", middleware.AdminAuth(cfg.JWTSecret))
		{
			protected.GET("/cache/stats", h.Admin.CacheStats)
			protected.DELETE("/cache/forecast", h.Admin.PurgeForecasts)
			protected.DELETE("/cache/geocode", h.Admin.PurgeGeocodes)
		}
	}

	return r
}
