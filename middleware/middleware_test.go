package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sattva/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSessionEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.Use(SessionMiddleware(time.Hour, false))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SessionIDKey))
	})
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie set", SessionCookieName)
	return nil
}

func TestSessionMiddlewareIssuesAndReusesSession(t *testing.T) {
	r := newSessionEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)
	first := w.Body.String()
	require.NotEmpty(t, first)
	ck := sessionCookie(t, w)
	assert.True(t, ck.HttpOnly)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(ck)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String())
}

func TestSessionMiddlewareRejectsForgedCookie(t *testing.T) {
	r := newSessionEngine()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())

	// A valid token with a tampered signature.
	forged, err := utils.GenerateSessionToken("victim", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: forged + "x"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "victim", w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// Another client has its own allowance.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "10.0.0.2:1234", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": " 5.6.7.8 "}, "10.0.0.2:1234", "5.6.7.8"},
		{"remote addr", nil, "9.9.9.9:443", "9.9.9.9"},
		{"garbage header", map[string]string{"X-Forwarded-For": "unknown"}, "9.9.9.9:443", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
