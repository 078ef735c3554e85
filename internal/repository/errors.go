// Package repository defines error types that are reused across
// repositories.  These sentinel values let handlers distinguish failure
// scenarios without inspecting driver errors: ErrNotFound maps to an
// HTTP 404, ErrUsernameExists to a 409 and ErrProtectedUser to a 400.
package repository

import "errors"

// ErrNotFound is returned when a lookup by reference ID or username
// matches nothing.  For invoice lookups this is a normal, expected
// outcome, not an exceptional condition.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when creating a staff account whose
// username is already taken.
var ErrUsernameExists = errors.New("username already exists")

// ErrProtectedUser is returned when attempting to delete the default
// admin account, which must always remain so the system stays
// administrable.
var ErrProtectedUser = errors.New("cannot delete default admin")
