// File: internal/common/response.go
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageResponse is the body of responses that only carry a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithError logs err and sends it as a JSON error body.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		apiErr = ErrInternalServer.WithDetails(err.Error())
	}

	if logger := LoggerFrom(c); logger != nil {
		fields := []zap.Field{
			zap.Int("status_code", apiErr.StatusCode),
			zap.String("code", apiErr.Code),
			zap.String("error_message", apiErr.Message),
			zap.Any("details", apiErr.Details),
		}
		if apiErr.StatusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", fields...)
		} else {
			logger.Warn("Request rejected", fields...)
		}
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// RespondOK sends data as-is with 200.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated sends data as-is with 201.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// RespondMessage sends {"message": message} with 200.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}
