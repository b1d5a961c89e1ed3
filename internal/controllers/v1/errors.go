package v1

import (
	"errors"
	"net/http"

	"github.com/pennywise-app/backend/internal/auth"
	"github.com/pennywise-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errCredentialsInvalid) ||
		errors.Is(err, errNotLoggedIn) ||
		errors.Is(err, auth.ErrTokenInvalid) ||
		errors.Is(err, auth.ErrTokenExpired) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, errReceiptsNotConfigured) {
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errCredentialsInvalid = errors.New("the email or password is incorrect")
	errNotLoggedIn        = errors.New("you need to log in to use this endpoint")
	errPasswordRequired   = errors.New("the password must be set")
)

// Transaction errors
var (
	errDateRangeIncomplete = errors.New("the startDate and endDate parameters must be used together")
)

// Receipt errors
var (
	errNoFilePost            = errors.New("you must send a file to this endpoint")
	errReceiptsNotConfigured = errors.New("receipt extraction is not configured on this server")
)
