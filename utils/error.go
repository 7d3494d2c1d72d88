package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.FullPath()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "internalError",
					Message: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response and logs it. Server-side
// failures are logged at error level, client mistakes at warn.
func JSONError(c *gin.Context, status int, code string, message string) {
	Logger := GetLogger()
	if status >= http.StatusInternalServerError {
		Logger.Error(code, zap.String("details", message), zap.String("path", c.FullPath()))
	} else {
		Logger.Warn(code, zap.String("details", message), zap.String("path", c.FullPath()))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: code, Message: message})
}
