package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/unicart/unicart/internal/models"
	"github.com/unicart/unicart/internal/repo"
	"github.com/unicart/unicart/internal/tokens"
)

const identityKey = "identity"

// Identity is the resolved caller attached to the request context.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// Gate authenticates requests with a bearer token. It holds no per-request
// state: the token is re-verified and the user row re-resolved on every
// call, so deactivating a user takes effect immediately even though tokens
// are only revoked by expiry.
type Gate struct {
	Tokens *tokens.Service
	Repo   *repo.GormRepo
}

func (g *Gate) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return g.requireWith(next, nil)
}

func (g *Gate) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return g.requireWith(next, func(c echo.Context, id Identity) error {
		if id.Role != models.RoleAdmin {
			return reject(c, http.StatusForbidden, "admin access required")
		}
		return nil
	})
}

func (g *Gate) requireWith(next echo.HandlerFunc, check func(echo.Context, Identity) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return reject(c, http.StatusUnauthorized, "authentication required")
		}

		claims, err := g.Tokens.Parse(token)
		if err != nil {
			return reject(c, http.StatusUnauthorized, "invalid or expired token")
		}
		userID, err := claims.UserID()
		if err != nil {
			return reject(c, http.StatusUnauthorized, "invalid or expired token")
		}

		user, err := g.Repo.UserByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return reject(c, http.StatusUnauthorized, "user not found or inactive")
			}
			return reject(c, http.StatusInternalServerError, "Internal server error")
		}
		if !user.IsActive {
			return reject(c, http.StatusUnauthorized, "user not found or inactive")
		}

		id := Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
		if check != nil {
			if err := check(c, id); err != nil {
				return err
			}
		}

		c.Set(identityKey, id)
		return next(c)
	}
}

// reject writes the same {"error": msg} failure envelope the handlers use,
// so gate rejections decode uniformly on clients.
func reject(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}
	return token
}

// CurrentUser returns the identity set by RequireAuth.
func CurrentUser(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
