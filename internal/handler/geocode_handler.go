package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripcast/tripcast-backend-go/internal/service"
	"github.com/tripcast/tripcast-backend-go/pkg/response"
)

// GeocodeHandler handles HTTP requests for place name resolution
type GeocodeHandler struct {
	service *service.GeocodeService
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(service *service.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{service: service}
}

// Search resolves a free-text place name
// GET /api/v1/geocode?q=Lyon
func (h *GeocodeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing query parameter q")
		return
	}

	place, err := h.service.Resolve(c.Request.Context(), query)
	if err != nil {
		response.Error(c, http.StatusBadGateway, err.Error())
		return
	}
	if place == nil {
		response.NotFound(c, "No match for "+query)
		return
	}

	response.Success(c, place)
}
