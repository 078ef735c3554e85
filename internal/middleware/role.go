package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context

	"github.com/oceanview/resort-api/internal/auth"  // role and session model
	"github.com/oceanview/resort-api/internal/utils" // access token parsing
)

// RequireRole returns a middleware that enforces that the caller holds
// one of the given roles.  Two credentials are accepted:
//
//   - "Authorization: Bearer <jwt>": the token issued at login.  Its
//     signature is verified, so this is the authoritative check.
//   - "X-Role: <role>": the legacy header sent by older dashboard
//     builds.  It is advisory only: any client can forge it, and it is
//     honored solely to keep the original API contract working.
//
// On success the username and role are stored in the request context
// under "username" and "role".  Anything else is rejected with 403 and
// the access-denied message the dashboard expects.
func RequireRole(jwtSecret string, roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Prefer the signed token when present.
			if h := c.Request().Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				raw := strings.TrimPrefix(h, "Bearer ")
				username, roleStr, err := utils.ParseAccessToken(jwtSecret, raw)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or expired token"})
				}
				role, ok := auth.ParseRole(roleStr)
				if !ok {
					return accessDenied(c)
				}
				sess := auth.Session{Username: username, Role: role}
				if !sessionAllowed(sess, roles) {
					return accessDenied(c)
				}
				c.Set("username", username)
				c.Set("role", string(role))
				return next(c)
			}

			// Fall back to the advisory header.
			role, ok := auth.ParseRole(strings.ToUpper(strings.TrimSpace(c.Request().Header.Get("X-Role"))))
			if !ok || !sessionAllowed(auth.Session{Role: role}, roles) {
				return accessDenied(c)
			}
			c.Set("role", string(role))
			return next(c)
		}
	}
}

// sessionAllowed reports whether the session satisfies any of the
// required roles, with the ADMIN-covers-all rule from the session
// model.
func sessionAllowed(s auth.Session, roles []auth.Role) bool {
	for _, r := range roles {
		if s.IsAuthorized(r) {
			return true
		}
	}
	return false
}

func accessDenied(c echo.Context) error {
	return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied. Admin only."})
}
