package handler // handler defines http handlers

import (
	"errors"   // errors provides As for unwrapping domain errors
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/iliyamo/event-seating/internal/seating"
)

// SeatingHandler bundles the domain service behind the HTTP surface.
type SeatingHandler struct {
	Svc *seating.Service
}

// NewSeatingHandler constructs a SeatingHandler and panics if the
// service is nil.
func NewSeatingHandler(svc *seating.Service) *SeatingHandler {
	if svc == nil {
		panic("nil service passed to NewSeatingHandler")
	}
	return &SeatingHandler{Svc: svc}
}

// getUserID extracts the authenticated user's identifier placed in the
// context by the JWT middleware.
func getUserID(c echo.Context) (string, error) {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("missing user_id in context")
}

// writeError converts a domain error into the wire error shape
// {message, code?, details?}.  Status mapping lives here and nowhere
// else: not-found -> 404, internal -> 500, everything else -> 400.
func writeError(c echo.Context, err error) error {
	var de *seating.Error
	if !errors.As(err, &de) {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "internal server error",
			"code":    seating.CodeInternal,
		})
	}
	status := http.StatusBadRequest
	switch de.Kind {
	case seating.KindNotFound:
		status = http.StatusNotFound
	case seating.KindInternal:
		status = http.StatusInternalServerError
	}
	body := echo.Map{"message": de.Message}
	if de.Code != "" {
		body["code"] = de.Code
	}
	if de.Details != nil {
		body["details"] = de.Details
	}
	return c.JSON(status, body)
}
