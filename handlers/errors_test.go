package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sattva/services/booking"
	"sattva/services/newsletter"
	"sattva/services/session"
	"sattva/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no session", session.ErrNoSession, "sessionRequired"},
		{"wrapped no session", fmt.Errorf("load booking: %w", session.ErrNoSession), "sessionRequired"},
		{"wizard error", booking.ErrWrongStep, "wrongStep"},
		{"newsletter hidden", newsletter.ErrNotVisible, "newsletterHidden"},
		{"untyped error", errors.New("boom"), "requestFailed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := describe(tt.err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRespondErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{session.ErrNoSession, http.StatusUnauthorized, "sessionRequired"},
		{newsletter.ErrNotVisible, http.StatusConflict, "newsletterHidden"},
		{errors.New("boom"), http.StatusInternalServerError, "internalError"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, tt.err)

		require.Equal(t, tt.status, w.Code, tt.err.Error())
		var body utils.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.code, body.Error)
	}
}
