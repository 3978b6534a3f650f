package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripcast/tripcast-backend-go/internal/models"
	"github.com/tripcast/tripcast-backend-go/internal/service"
	"github.com/tripcast/tripcast-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trip planning
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// PlanTrip plans a trip and returns its weather-annotated route
// POST /api/v1/trips/plan
func (h *TripHandler) PlanTrip(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.service.PlanTrip(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEnoughStops):
			response.Unprocessable(c, err.Error())
		case errors.Is(err, service.ErrNoRoute):
			response.NotFound(c, err.Error())
		default:
			response.Error(c, http.StatusBadGateway, err.Error())
		}
		return
	}

	response.Success(c, plan)
}
