package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripcast/tripcast-backend-go/internal/middleware"
	"github.com/tripcast/tripcast-backend-go/internal/service"
	"github.com/tripcast/tripcast-backend-go/pkg/response"
)

// AdminHandler handles the authenticated cache maintenance API
type AdminHandler struct {
	cache       *service.CacheService
	jwtSecret   string
	adminSecret string
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(cache *service.CacheService, jwtSecret, adminSecret string) *AdminHandler {
	return &AdminHandler{cache: cache, jwtSecret: jwtSecret, adminSecret: adminSecret}
}

type loginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// Login exchanges the admin secret for a bearer token
// POST /api/admin/auth/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if h.adminSecret == "" || req.Secret != h.adminSecret {
		response.Error(c, http.StatusUnauthorized, "Invalid admin secret")
		return
	}

	token, err := middleware.IssueAdminToken(h.jwtSecret)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"token": token})
}

// PurgeForecasts clears the forecast cache
// DELETE /api/admin/cache/forecast
func (h *AdminHandler) PurgeForecasts(c *gin.Context) {
	n, err := h.cache.PurgeForecasts()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": n})
}

// PurgeGeocodes clears the geocode cache
// DELETE /api/admin/cache/geocode
func (h *AdminHandler) PurgeGeocodes(c *gin.Context) {
	n, err := h.cache.PurgeGeocodes()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": n})
}

// CacheStats reports cache sizes
// GET /api/admin/cache/stats
func (h *AdminHandler) CacheStats(c *gin.Context) {
	stats, err := h.cache.Stats()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, stats)
}
