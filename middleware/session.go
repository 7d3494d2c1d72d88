package middleware

import (
	"net/http"
	"time"

	"sattva/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "sattva_session"
	SessionIDKey      = "sessionID"
)

// SessionMiddleware resolves the visitor's session from the signed session
// cookie. A missing, expired or tampered cookie starts a new session. The
// cookie is re-issued on every request so that it lives as long as the
// session state does.
func SessionMiddleware(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			if id, err := utils.ExtractIDFromToken(raw); err == nil {
				sessionID = id
			} else {
				getRequestLogger(c).Debug("session cookie rejected", zap.Error(err))
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			getRequestLogger(c).Debug("session started", zap.String("sessionID", sessionID))
		}

		token, err := utils.GenerateSessionToken(sessionID, ttl)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "internalError", "failed to issue session token")
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)

		c.Set(SessionIDKey, sessionID)
		if l, ok := c.Get(LoggerKey); ok {
			if logger, ok := l.(*zap.Logger); ok {
				c.Set(LoggerKey, logger.With(zap.String("sessionID", sessionID)))
			}
		}
		c.Next()
	}
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
