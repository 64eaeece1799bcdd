// File: internal/stats/handler.go
package stats

import (
	"adoptaunpana_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the dashboard counters.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new stats handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up GET /stats.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.getStats)
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, stats)
}
