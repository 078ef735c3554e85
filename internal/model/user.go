package model

import "time"

// User mirrors the 'users' table.  Staff accounts are managed by admins
// through the user endpoints; the password is stored as a bcrypt hash
// and masked before any account is returned to a client.
type User struct {
	ID        uint64    `json:"-"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"-"`
}
