package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phonebook/core/internal/infrastructure/logger"
	"github.com/phonebook/core/internal/ports"
)

// InfoHandler serves phonebook summary and admin requests
type InfoHandler struct {
	contactService ports.ContactService
	logger         *logger.Logger
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(contactService ports.ContactService, logger *logger.Logger) *InfoHandler {
	return &InfoHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Info godoc
// @Summary Phonebook summary
// @Description Number of entries and the time of the request
// @Tags info
// @Produce json
// @Success 200 {object} ports.PhonebookInfo
// @Router /info [get]
func (h *InfoHandler) Info(c echo.Context) error {
	info, err := h.contactService.Info(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, info)
}

// Reload godoc
// @Summary Reload the phonebook file
// @Description Replaces the in-memory phonebook with the file content
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/reload [post]
func (h *InfoHandler) Reload(c echo.Context) error {
	n, err := h.contactService.Reload(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}

	h.logger.Infow("Phonebook reloaded on request", "entries", n, "ip", c.RealIP())
	return c.JSON(http.StatusOK, ReloadResponse{Entries: n})
}
