package handler // handler package contains guest endpoints

import (
	"net/http" // http defines status codes
	"strings"  // strings normalizes the assigned query flag

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/seating"
)

// CreateGuest handles POST /v1/events/:eventId/guests.
func (h *SeatingHandler) CreateGuest(c echo.Context) error {
	var body struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Status    string `json:"status"`
		PartySize int    `json:"partySize"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	guest, err := h.Svc.CreateGuest(c.Request().Context(), c.Param("eventId"), seating.GuestInput{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Status:    model.GuestStatus(body.Status),
		PartySize: body.PartySize,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, guest)
}

// ListGuests handles GET /v1/events/:eventId/guests.  The optional
// ?assigned=true|false query partitions guests into those holding a
// table assignment and those without one; each returned guest carries
// its assignment when present.
func (h *SeatingHandler) ListGuests(c echo.Context) error {
	var assigned *bool
	switch strings.ToLower(c.QueryParam("assigned")) {
	case "":
	case "true":
		v := true
		assigned = &v
	case "false":
		v := false
		assigned = &v
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "assigned must be true or false"})
	}
	guests, err := h.Svc.ListGuests(c.Request().Context(), c.Param("eventId"), assigned)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, guests)
}

// GetGuest handles GET /v1/events/:eventId/guests/:guestId.
func (h *SeatingHandler) GetGuest(c echo.Context) error {
	guest, err := h.Svc.GetGuest(c.Request().Context(), c.Param("eventId"), c.Param("guestId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, guest)
}

// UpdateGuest handles PUT /v1/events/:eventId/guests/:guestId.
func (h *SeatingHandler) UpdateGuest(c echo.Context) error {
	var body struct {
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Status    *string `json:"status"`
		PartySize *int    `json:"partySize"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	in := seating.UpdateGuestInput{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		PartySize: body.PartySize,
	}
	if body.Status != nil {
		s := model.GuestStatus(*body.Status)
		in.Status = &s
	}
	guest, err := h.Svc.UpdateGuest(c.Request().Context(), c.Param("eventId"), c.Param("guestId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, guest)
}

// DeleteGuest handles DELETE /v1/events/:eventId/guests/:guestId and
// cascades to the guest's table assignments.
func (h *SeatingHandler) DeleteGuest(c echo.Context) error {
	if err := h.Svc.DeleteGuest(c.Request().Context(), c.Param("eventId"), c.Param("guestId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
