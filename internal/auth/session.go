// Package auth defines the session and role model shared by the API and
// its clients.  A Session is created at successful login, held for the
// life of the client session and discarded at logout; core logic only
// ever reads it.
package auth

// Role is the authorization level attached to an account.  ADMIN
// satisfies any requirement; STAFF satisfies only STAFF-level ones.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleStaff:
		return Role(s), true
	}
	return "", false
}

// Session identifies a logged-in account.  On the client it is an
// affordance filter only: it decides which navigation items and actions
// are shown.  Any client-held role is trivially forgeable, so every
// role-gated endpoint re-checks authorization server-side regardless of
// what the session claims.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAuthorized reports whether the session's role meets the required
// level.  An unauthorized attempt is a local, recoverable condition: the
// caller surfaces an access-denied notice and skips the action.
func (s Session) IsAuthorized(required Role) bool {
	if s.Role == RoleAdmin {
		return true
	}
	return s.Role == required
}
