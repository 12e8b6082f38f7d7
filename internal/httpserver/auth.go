package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicart/unicart/internal/logging"
	"github.com/unicart/unicart/internal/service"
	"github.com/unicart/unicart/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if fields := transport.Validate(req); fields != nil {
		l.Warn("register_error", "status", 400, "reason", "validation failed")
		return respondValidation(c, fields)
	}

	res, err := h.Svc.Register(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			l.Warn("register_error", "status", 409, "error", err)
			return respondError(c, http.StatusConflict, "Email already registered")
		}
		l.Error("register_error", "status", 500, "error", err)
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}

	l.Info("user registered", "user_id", res.User.ID)
	return c.JSON(http.StatusCreated, transport.AuthResponse{
		Success: true,
		Token:   res.Token,
		User:    transport.NewUserView(res.User),
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if fields := transport.Validate(req); fields != nil {
		l.Warn("login_error", "status", 400, "reason", "validation failed")
		return respondValidation(c, fields)
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_error", "status", 401)
			return respondError(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, service.ErrInactiveAccount):
			l.Warn("login_error", "status", 403)
			return respondError(c, http.StatusForbidden, "Account is inactive")
		default:
			l.Error("login_error", "status", 500, "error", err)
			return respondError(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	l.Info("user logged in", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{
		Success: true,
		Token:   res.Token,
		User:    transport.NewUserView(res.User),
	})
}
