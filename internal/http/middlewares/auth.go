package middleware

import (
	"context"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"taskmarket.com/taskmarket/internal/constants"
	apperrors "taskmarket.com/taskmarket/internal/errors"
	"taskmarket.com/taskmarket/internal/services"
)

const callerKey = "caller"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (services.Caller, error)
}

// Authenticate requires an "Authorization: Bearer <token>" header and stores
// the resolved caller on the context.
func Authenticate(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return apperrors.ErrMissingToken
			}

			caller, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(callerKey, caller)
			return next(c)
		}
	}
}

// Authorize must run after Authenticate.
func Authorize(roles ...constants.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := c.Get(callerKey).(services.Caller)
			if !ok {
				return apperrors.ErrMissingToken
			}
			if !slices.Contains(roles, caller.Role) {
				return apperrors.Forbidden("role " + string(caller.Role) + " is not authorized to access this route")
			}
			return next(c)
		}
	}
}

func CallerFrom(c echo.Context) services.Caller {
	caller, _ := c.Get(callerKey).(services.Caller)
	return caller
}
