package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oceanview/resort-api/internal/auth"
	"github.com/oceanview/resort-api/internal/config"
	"github.com/oceanview/resort-api/internal/repository"
)

// UserHandler bundles dependencies for the staff-account endpoints.
// All of its routes sit behind the ADMIN role gate.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type createUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// List handles GET /api/users.  Passwords are masked by the repository
// before they reach this handler.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to load users"})
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users: a new staff account with a validated
// role and a bcrypt-hashed password.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid JSON"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields"})
	}
	role, ok := auth.ParseRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Role must be ADMIN or STAFF"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, req.Username, req.Password, string(role), h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User created successfully"})
}

// Delete handles DELETE /api/users?username=x.  The default admin is
// protected so the system always keeps one administrator.
func (h *UserHandler) Delete(c echo.Context) error {
	username := strings.TrimSpace(c.QueryParam("username"))
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing username parameter"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, username); err != nil {
		switch {
		case errors.Is(err, repository.ErrProtectedUser):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Cannot delete default admin"})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted"})
}
