package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/event-seating/internal/handler"    // handlers implementing the seating endpoints
	"github.com/iliyamo/event-seating/internal/middleware" // middleware for JWT authentication
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance: the health check and the read-only
// browse endpoints for venues and events.
func RegisterRoutes(e *echo.Echo, h *handler.SeatingHandler) {
	// Health endpoint for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	e.GET("/v1/venues", h.ListVenues)
	e.GET("/v1/venues/:id", h.GetVenue)
	e.GET("/v1/events", h.ListEvents)
	e.GET("/v1/events/:id", h.GetEvent)
}

// RegisterSeating registers every mutating and guest-facing route
// behind the JWTAuth middleware.  The route shapes mirror the entity
// hierarchy: venues and events at the top, guests under their event,
// assignments under an event's table.
func RegisterSeating(e *echo.Echo, h *handler.SeatingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	// Venues.
	g.POST("/venues", h.CreateVenue)
	g.PUT("/venues/:id", h.UpdateVenue)
	g.DELETE("/venues/:id", h.DeleteVenue)

	// Events.
	g.POST("/events", h.CreateEvent)
	g.PUT("/events/:id", h.UpdateEvent)
	g.DELETE("/events/:id", h.DeleteEvent)

	// Guests of an event.
	g.POST("/events/:eventId/guests", h.CreateGuest)
	g.GET("/events/:eventId/guests", h.ListGuests)
	g.GET("/events/:eventId/guests/:guestId", h.GetGuest)
	g.PUT("/events/:eventId/guests/:guestId", h.UpdateGuest)
	g.DELETE("/events/:eventId/guests/:guestId", h.DeleteGuest)

	// Table assignments.
	g.POST("/events/:eventId/tables/:tableId/assignments", h.CreateAssignment)
	g.GET("/events/:eventId/tables/:tableId/assignments", h.ListAssignments)
	g.DELETE("/events/:eventId/tables/:tableId/assignments/:guestId", h.DeleteAssignment)
}
