// File: internal/location/handler.go
package location

import (
	"adoptaunpana_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the reference data endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new location handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up GET /provinces and GET /cities.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/provinces", h.listProvinces)
	router.GET("/cities", h.listCities)
}

func (h *Handler) listProvinces(c *gin.Context) {
	provinces, err := h.service.ListProvinces(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, provinces)
}

func (h *Handler) listCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context(), c.Query("province"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, cities)
}
