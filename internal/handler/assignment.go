package handler // handler package contains table assignment endpoints

import (
	"math"     // math checks that seat numbers are whole
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo provides the web context and JSON helpers

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/seating"
)

// CreateAssignment handles POST /v1/events/:eventId/tables/:tableId/assignments.
// Seat numbers arrive as JSON numbers and must be finite integers; the
// remaining invariants (party size, range, occupancy, single
// assignment per guest) live in the seating engine.
func (h *SeatingHandler) CreateAssignment(c echo.Context) error {
	var body struct {
		GuestID     string    `json:"guestId"`
		SeatNumbers []float64 `json:"seatNumbers"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "seatNumbers must be an array of numbers",
			"code":    seating.CodeInvalidSeatNumbers,
		})
	}
	seats := make([]int, 0, len(body.SeatNumbers))
	for _, n := range body.SeatNumbers {
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "seatNumbers must contain only integers",
				"code":    seating.CodeInvalidSeatNumbers,
			})
		}
		seats = append(seats, int(n))
	}
	assignment, err := h.Svc.CreateAssignment(c.Request().Context(),
		c.Param("eventId"), c.Param("tableId"), body.GuestID, seats)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

// ListAssignments handles GET /v1/events/:eventId/tables/:tableId/assignments.
func (h *SeatingHandler) ListAssignments(c echo.Context) error {
	assignments, err := h.Svc.ListAssignments(c.Request().Context(),
		c.Param("eventId"), c.Param("tableId"))
	if err != nil {
		return writeError(c, err)
	}
	if assignments == nil {
		assignments = []model.TableAssignment{}
	}
	return c.JSON(http.StatusOK, assignments)
}

// DeleteAssignment handles
// DELETE /v1/events/:eventId/tables/:tableId/assignments/:guestId.
func (h *SeatingHandler) DeleteAssignment(c echo.Context) error {
	if err := h.Svc.DeleteAssignment(c.Request().Context(),
		c.Param("eventId"), c.Param("tableId"), c.Param("guestId")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
