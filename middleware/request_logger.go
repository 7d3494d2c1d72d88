package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	LoggerKey       = "logger"
	RequestIDHeader = "X-Request-ID"
)

// RequestLogger attaches a request-scoped logger to the context and logs
// each request once it completes.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		c.Set(LoggerKey, base.With(zap.String("requestID", requestID)))
		start := time.Now()
		c.Next()

		getRequestLogger(c).Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)),
		)
	}
}

func getRequestLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(LoggerKey); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
