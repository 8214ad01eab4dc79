package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phonebook/core/internal/domain/entities"
)

// Request/Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type ReloadResponse struct {
	Entries int `json:"entries"`
}

// parseID reads the :id path parameter
func parseID(c echo.Context) (entities.ID, error) {
	id, err := entities.ParseID(c.Param("id"))
	if err != nil {
		return entities.ID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid contact ID")
	}
	return id, nil
}

// statusFor maps a phonebook error to an HTTP status. Caller mistakes are
// 400s; everything else is on our side.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrNotFound),
		errors.Is(err, entities.ErrInvalidID),
		errors.Is(err, entities.ErrInvalidName),
		errors.Is(err, entities.ErrDuplicateName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse converts err into an echo.HTTPError. Server-side errors keep
// the cause as Internal so it is logged but not sent.
func errorResponse(err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		return echo.NewHTTPError(code, http.StatusText(code)).SetInternal(err)
	}

	msg := err.Error()
	switch {
	case errors.Is(err, entities.ErrDuplicateName):
		msg = "name must be unique"
	case errors.Is(err, entities.ErrInvalidID):
		msg = "id must not be supplied"
	case errors.Is(err, entities.ErrInvalidName):
		msg = "name missing"
	case errors.Is(err, entities.ErrNotFound):
		msg = "contact not found"
	}
	return echo.NewHTTPError(code, msg)
}
