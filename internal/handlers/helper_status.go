package handlers

import (
	"errors"
	"net/http"

	"deudasBack/internal/models"
)

// statusFromError translates the service error taxonomy into an HTTP
// status code. Unknown errors stay internal.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidScheduleParams),
		errors.Is(err, models.ErrInvalidPeriod),
		errors.Is(err, models.ErrInvalidEstado):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrDebtForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrDebtNotFound),
		errors.Is(err, models.ErrScheduleEntryNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNoRecord):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateDocumento),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDebtAlreadyPaid),
		errors.Is(err, models.ErrEntryAlreadyPaid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
