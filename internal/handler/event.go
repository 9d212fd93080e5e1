package handler // handler package contains event endpoints

import (
	"net/http" // http defines status codes
	"strings"  // strings trims incoming timestamps
	"time"     // time parses event dates

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/seating"
)

// CreateEvent handles POST /v1/events.  The authenticated user becomes
// the event owner; scheduling rules are enforced by the service.
func (h *SeatingHandler) CreateEvent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		VenueID        string `json:"venueId"`
		Type           string `json:"type"`
		Title          string `json:"title"`
		Description    string `json:"description"`
		Date           string `json:"date"`
		ExpectedGuests int    `json:"expectedGuests"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	date, err := time.Parse(time.RFC3339, strings.TrimSpace(body.Date))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date must be an RFC 3339 timestamp"})
	}
	event, err := h.Svc.CreateEvent(c.Request().Context(), seating.CreateEventInput{
		UserID:         userID,
		VenueID:        body.VenueID,
		Type:           model.EventType(body.Type),
		Title:          body.Title,
		Description:    body.Description,
		Date:           date,
		ExpectedGuests: body.ExpectedGuests,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /v1/events/:id.
func (h *SeatingHandler) GetEvent(c echo.Context) error {
	event, err := h.Svc.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// ListEvents handles GET /v1/events.
func (h *SeatingHandler) ListEvents(c echo.Context) error {
	events, err := h.Svc.ListEvents(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if events == nil {
		events = []model.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// UpdateEvent handles PUT /v1/events/:id.  Scheduling rules re-run
// with the event itself excluded from the day-conflict scan.
func (h *SeatingHandler) UpdateEvent(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	var body struct {
		VenueID        *string `json:"venueId"`
		Type           *string `json:"type"`
		Title          *string `json:"title"`
		Description    *string `json:"description"`
		Date           *string `json:"date"`
		ExpectedGuests int     `json:"expectedGuests"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	in := seating.UpdateEventInput{
		VenueID:        body.VenueID,
		Description:    body.Description,
		Title:          body.Title,
		ExpectedGuests: body.ExpectedGuests,
	}
	if body.Type != nil {
		t := model.EventType(*body.Type)
		in.Type = &t
	}
	if body.Date != nil {
		date, err := time.Parse(time.RFC3339, strings.TrimSpace(*body.Date))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "date must be an RFC 3339 timestamp"})
		}
		in.Date = &date
	}
	event, err := h.Svc.UpdateEvent(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /v1/events/:id and cascades to the
// event's guests and assignments.
func (h *SeatingHandler) DeleteEvent(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	if err := h.Svc.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
