package middleware

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogging logs every request through logger and turns panics into 500 responses
func RequestLogging(logger *zap.Logger) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
	}
}
