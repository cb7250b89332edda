// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/bayanihan/restaurant-reservation/internal/handler"
	"github.com/bayanihan/restaurant-reservation/internal/middleware"
)

// RegisterPublic registers the guest-facing endpoints under /api.  The
// rate limiter wraps the whole group; pass a nil middleware to disable
// limiting (e.g. when Redis is unavailable).
func RegisterPublic(e *echo.Echo, avail *handler.AvailabilityHandler, res *handler.ReservationHandler, rateLimit echo.MiddlewareFunc) {
	g := e.Group("/api")
	if rateLimit != nil {
		g.Use(rateLimit)
	}

	// Liveness probe for load balancers and monitoring.
	g.GET("/health", handler.Health)

	// Static restaurant metadata and weekly operating hours.
	g.GET("/restaurant/:id", handler.GetRestaurant)

	// Availability: the free slots of a day for a party size.
	g.GET("/availability", avail.GetAvailability)

	// Reservations: create, fetch by id or confirmation number, cancel.
	g.POST("/reservations", res.Create)
	g.GET("/reservations/:id", res.Get)
	g.DELETE("/reservations/:id", res.Cancel)
}

// RegisterAdmin registers the operator endpoints.  Login is open; the
// reservation day view requires a valid admin token.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	e.POST("/api/admin/login", a.Login)

	g := e.Group("/api/admin")
	g.Use(middleware.AdminAuth(jwtSecret))
	g.GET("/reservations", a.ListReservations)
}
