// File: internal/setup/handler.go
package setup

import (
	"net/http"

	"adoptaunpana_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the setup routine over HTTP.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new setup handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up POST /setup.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/setup", h.runSetup)
}

type setupResponse struct {
	Message string      `json:"message"`
	Schema  *Report     `json:"schema"`
	Seeded  *SeedResult `json:"seeded"`
}

func (h *Handler) runSetup(c *gin.Context) {
	result, err := h.service.Run(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, setupResponse{
		Message: "Database setup completed successfully",
		Schema:  result.Schema,
		Seeded:  result.Seeded,
	})
}
