package router // package router defines how HTTP routes are registered for the API

import (
	"net/http" // standard method names for the CORS allow list

	"github.com/labstack/echo/v4"                   // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware" // Echo's bundled CORS middleware

	"github.com/oceanview/resort-api/internal/auth"       // role constants for the admin gate
	"github.com/oceanview/resort-api/internal/handler"    // import the handlers that implement business logic
	"github.com/oceanview/resort-api/internal/middleware" // role enforcement middleware
)

// RegisterRoutes installs instance-wide middleware and the routes that
// do not require authentication: the health check and the API docs.
//
// The booking form and the dashboard are static pages served from
// another origin, so every endpoint answers cross-origin requests.  The
// JSON content type and the X-Role header both trigger a preflight,
// which the CORS middleware answers for all routes.
func RegisterRoutes(e *echo.Echo) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Role"},
	}))

	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)

	// Interactive API documentation.
	e.GET("/swagger-ui", handler.SwaggerUI)
	e.GET("/api-docs/openapi.json", handler.OpenAPISpec)
}

// RegisterReservations registers the reservation endpoints.  Creation
// and lookup are open to the public booking form; cache and rate-limit
// middleware are supplied by the caller so they can be disabled when
// Redis is unavailable.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler, cache, limit echo.MiddlewareFunc) {
	g := e.Group("/api/reservations")
	// The public booking form posts here; the rate limiter keeps a
	// misbehaving client from flooding the bookings table.
	g.POST("", r.Create, limit)
	// Read endpoints are cached; the dashboard polls them on every
	// navigation and the data changes only when a booking lands.
	g.GET("", r.List, cache)
	g.GET("/table", r.Table, cache)
	g.GET("/stats", r.Stats, cache)
	// Invoice lookup by reference ID.  Echo matches the static /stats
	// and /table paths ahead of this parameter route.
	g.GET("/:referenceId", r.GetByReference)
}

// RegisterAuth registers the login endpoint at /api/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/api/auth", a.Login)
}

// RegisterUsers registers the staff-management endpoints.  Every route
// requires the ADMIN role, proven either by the signed access token or
// by the legacy advisory X-Role header.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string) {
	g := e.Group("/api/users")
	g.Use(middleware.RequireRole(jwtSecret, auth.RoleAdmin))
	g.GET("", u.List)
	g.POST("", u.Create)
	g.DELETE("", u.Delete)
}
