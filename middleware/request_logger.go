package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"solbridge/utils"
)

// RequestLoggerMiddleware attaches a request-scoped logger carrying a
// correlation id, so every log line of one submission can be tied together.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		logger := utils.GetLogger().With(zap.String("requestId", requestID))
		c.Set("logger", logger)
		c.Header("X-Request-Id", requestID)
		c.Next()
	}
}
