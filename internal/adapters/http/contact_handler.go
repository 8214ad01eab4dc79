package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/phonebook/core/internal/infrastructure/logger"
	"github.com/phonebook/core/internal/ports"
)

// ContactHandler handles phonebook requests
type ContactHandler struct {
	contactService ports.ContactService
	logger         *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService ports.ContactService, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// ListContacts godoc
// @Summary List contacts
// @Description List every contact ordered by id
// @Tags persons
// @Produce json
// @Success 200 {array} entities.Contact
// @Failure 500 {object} ErrorResponse
// @Router /persons [get]
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.ListContacts(c.Request().Context())
	if err != nil {
		return errorResponse(err)
	}
	return c.JSON(http.StatusOK, contacts)
}

// GetContact godoc
// @Summary Get contact by ID
// @Tags persons
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} entities.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /persons/{id} [get]
func (h *ContactHandler) GetContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	contact, found, err := h.contactService.GetContact(c.Request().Context(), id)
	if err != nil {
		return errorResponse(err)
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Contact not found")
	}
	return c.JSON(http.StatusOK, contact)
}

// SearchContacts godoc
// @Summary Find contact by name
// @Description Names match on first word, last word and word count, ignoring case and spacing
// @Tags persons
// @Produce json
// @Param name query string true "Name"
// @Success 200 {object} entities.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /persons/search [get]
func (h *ContactHandler) SearchContacts(c echo.Context) error {
	name := c.QueryParam("name")
	if strings.TrimSpace(name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name query parameter is required")
	}

	contact, found, err := h.contactService.FindContactByName(c.Request().Context(), name)
	if err != nil {
		return errorResponse(err)
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Contact not found")
	}
	return c.JSON(http.StatusOK, contact)
}

// CreateContact godoc
// @Summary Create a new contact
// @Description The id is assigned by the server and must not be supplied
// @Tags persons
// @Accept json
// @Produce json
// @Param request body ports.CreateContactRequest true "Contact data"
// @Success 201 {object} entities.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /persons [post]
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req ports.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if !req.ID.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "id must not be supplied")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.contactService.CreateContact(c.Request().Context(), req)
	if err != nil {
		h.logger.Warnw("Create contact failed", "error", err.Error(), "name", req.Name)
		return errorResponse(err)
	}

	return c.JSON(http.StatusCreated, contact)
}

// UpdateContact godoc
// @Summary Update a contact
// @Description Empty fields keep their stored value
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body ports.UpdateContactRequest true "Fields to change"
// @Success 200 {object} entities.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /persons/{id} [put]
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req ports.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.contactService.UpdateContact(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Warnw("Update contact failed", "error", err.Error(), "contact_id", id.String())
		return errorResponse(err)
	}

	return c.JSON(http.StatusOK, contact)
}

// DeleteContact godoc
// @Summary Delete a contact
// @Description Deleting an unknown id also succeeds
// @Tags persons
// @Param id path string true "Contact ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /persons/{id} [delete]
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.contactService.DeleteContact(c.Request().Context(), id); err != nil {
		return errorResponse(err)
	}

	return c.NoContent(http.StatusNoContent)
}
