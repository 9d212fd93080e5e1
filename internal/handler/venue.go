package handler // handler package contains venue endpoints

import (
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/seating"
)

// CreateVenue handles POST /v1/venues.  The optional map is validated
// structurally before the venue is stored.
func (h *SeatingHandler) CreateVenue(c echo.Context) error {
	var body struct {
		Name        string          `json:"name"`
		Address     string          `json:"address"`
		Capacity    int             `json:"capacity"`
		Description string          `json:"description"`
		Map         *model.VenueMap `json:"map"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	venue, err := h.Svc.CreateVenue(c.Request().Context(), seating.CreateVenueInput{
		Name:        body.Name,
		Address:     body.Address,
		Capacity:    body.Capacity,
		Description: body.Description,
		Map:         body.Map,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, venue)
}

// GetVenue handles GET /v1/venues/:id.
func (h *SeatingHandler) GetVenue(c echo.Context) error {
	venue, err := h.Svc.GetVenue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, venue)
}

// ListVenues handles GET /v1/venues.
func (h *SeatingHandler) ListVenues(c echo.Context) error {
	venues, err := h.Svc.ListVenues(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if venues == nil {
		venues = []model.Venue{}
	}
	return c.JSON(http.StatusOK, venues)
}

// UpdateVenue handles PUT /v1/venues/:id.  Absent fields stay
// untouched; a submitted map replaces the stored one wholesale.
func (h *SeatingHandler) UpdateVenue(c echo.Context) error {
	var body struct {
		Name        *string         `json:"name"`
		Address     *string         `json:"address"`
		Capacity    *int            `json:"capacity"`
		Description *string         `json:"description"`
		Map         *model.VenueMap `json:"map"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	venue, err := h.Svc.UpdateVenue(c.Request().Context(), c.Param("id"), seating.UpdateVenueInput{
		Name:        body.Name,
		Address:     body.Address,
		Capacity:    body.Capacity,
		Description: body.Description,
		Map:         body.Map,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, venue)
}

// DeleteVenue handles DELETE /v1/venues/:id.  Venues referenced by an
// event cannot be deleted.
func (h *SeatingHandler) DeleteVenue(c echo.Context) error {
	if err := h.Svc.DeleteVenue(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
