package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
	"github.com/Korea-Traffic-Solution/backend/pkg/response"
)

const adminContextKey = "admin"

// TokenAuthenticator resolves a bearer token to the admin it was issued to.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Admin, error)
}

type AuthMiddleware struct {
	authenticator TokenAuthenticator
}

func NewAuthMiddleware(authenticator TokenAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		admin, err := m.authenticator.Authenticate(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(adminContextKey, admin)
		return next(c)
	}
}

// AdminFromContext returns the admin stored by Authenticate, or nil.
func AdminFromContext(c echo.Context) *entity.Admin {
	admin, _ := c.Get(adminContextKey).(*entity.Admin)
	return admin
}
