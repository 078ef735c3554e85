package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/oceanview/resort-api/internal/model"
	"github.com/oceanview/resort-api/internal/utils"
)

// defaultAdmin is the seeded account that keeps the system
// administrable.  It can never be deleted through the API.
const defaultAdmin = "admin"

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a staff account with a bcrypt-hashed password and
// returns its ID.  ErrUsernameExists is returned on a duplicate
// username.
func (r *UserRepo) Create(ctx context.Context, username, password, role string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES (?,?,?)",
		username, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches an account with its password hash for login
// verification.  ErrNotFound is returned for unknown usernames.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,role,created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// List returns all accounts with the password field masked; hashes
// never leave this package through List.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,username,role,created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Password = "****"
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an account by username.  The default admin is
// protected; deleting an unknown username yields ErrNotFound.
func (r *UserRepo) Delete(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == defaultAdmin {
		return ErrProtectedUser
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE username=?", username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureDefaultAdmin seeds the default admin account when the users
// table is empty, so a fresh deployment can always be logged into.
func (r *UserRepo) EnsureDefaultAdmin(ctx context.Context, password string, cost int) error {
	var n int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err := r.Create(ctx, defaultAdmin, password, "ADMIN", cost)
	return err
}
