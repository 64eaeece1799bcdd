package middleware

import (
	"fmt"
	"net/http"

	"adoptaunpana_backend/internal/common"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500 {"error": "Internal server error", "details": ...}
// after ginzap has logged it with the stack.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, recovered any) {
		apiErr := common.ErrInternalServer.WithDetails(fmt.Sprint(recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, apiErr)
	})
}
