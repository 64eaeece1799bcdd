// File: internal/message/handler.go
package message

import (
	"adoptaunpana_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for message handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new message handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up /messages. writeMW guards message creation.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, writeMW gin.HandlerFunc) {
	messages := router.Group("/messages")
	{
		messages.GET("", h.listMessages)
		messages.POST("", writeMW, h.createMessage)
		messages.PUT("/:id/read", h.markAsRead)
	}
}

func (h *Handler) listMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context(), c.Query("listing_id"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, messages)
}

func (h *Handler) createMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.ValidationErrorFrom(err))
		return
	}
	msg, err := h.service.CreateMessage(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, msg)
}

func (h *Handler) markAsRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, errMessageNotFound.WithDetails("Invalid message ID format."))
		return
	}
	msg, err := h.service.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, msg)
}
