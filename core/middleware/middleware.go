package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gotix-api/core/constants"
	"gotix-api/core/errors"
	"gotix-api/core/utils"
	authservice "gotix-api/modules/auth/service"
)

type Middleware struct {
	authSvc authservice.AuthServiceInterface
}

func NewMiddleware(authSvc authservice.AuthServiceInterface) *Middleware {
	return &Middleware{authSvc: authSvc}
}

// AuthMiddleware validates the bearer token and rejects revoked sessions.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized,
					errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing authorization header", nil))
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized,
					errors.NewAppError(errors.ErrInvalidTokenFormat, "authorization header must be a bearer token", nil))
			}

			claims, err := utils.ValidateAndParseToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized,
					errors.NewAppError(errors.ErrUnauthorized, "invalid or expired token", err))
			}

			if appErr := m.authSvc.ValidateSession(c.Request().Context(), claims.UserID); appErr != nil {
				return c.JSON(http.StatusUnauthorized, appErr)
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
