package handlers

import (
	"errors"
	"net/http"

	"sattva/services/booking"
	"sattva/services/filter"
	"sattva/services/newsletter"
	"sattva/services/recipe"
	"sattva/services/session"
	"sattva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{recipe.ErrRecipeNotFound, http.StatusNotFound},
	{recipe.ErrInvalidMultiplier, http.StatusBadRequest},
	{recipe.ErrInvalidStep, http.StatusBadRequest},

	{booking.ErrProviderNotFound, http.StatusNotFound},
	{booking.ErrWrongStep, http.StatusConflict},
	{booking.ErrInvalidDate, http.StatusBadRequest},
	{booking.ErrDateRequired, http.StatusConflict},
	{booking.ErrInvalidTimeSlot, http.StatusBadRequest},
	{booking.ErrSelectionIncomplete, http.StatusConflict},
	{booking.ErrSubmissionPending, http.StatusConflict},

	{filter.ErrUnknownFilter, http.StatusBadRequest},

	{newsletter.ErrInvalidFraction, http.StatusBadRequest},
	{newsletter.ErrInvalidEmail, http.StatusBadRequest},
	{newsletter.ErrDismissed, http.StatusConflict},
	{newsletter.ErrNotVisible, http.StatusConflict},

	{session.ErrNoSession, http.StatusUnauthorized},
}

// respondError maps domain errors to their status and code. Anything else is
// logged and reported as an internal error.
func respondError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			code, message := describe(e.err)
			utils.JSONError(c, e.status, code, message)
			return
		}
	}
	getLogger(c).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internalError", "An unexpected error occurred. Please try again later.")
}

func describe(err error) (string, string) {
	var (
		re *recipe.ViewError
		be *booking.WizardError
		fe *filter.FilterError
		ne *newsletter.NewsletterError
	)
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "sessionRequired", err.Error()
	case errors.As(err, &re):
		return re.Code, re.Message
	case errors.As(err, &be):
		return be.Code, be.Message
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.As(err, &ne):
		return ne.Code, ne.Message
	}
	return "requestFailed", err.Error()
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalidRequest", err.Error())
}
