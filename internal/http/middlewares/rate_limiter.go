package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	apperrors "taskmarket.com/taskmarket/internal/errors"
	"taskmarket.com/taskmarket/internal/ratelimit"
)

// RateLimiter counts requests per client IP. When the limiter backend fails
// the request is let through and the failure is logged.
func RateLimiter(limiter ratelimit.Limiter, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			allowed, err := limiter.Allow(ctx, c.RealIP())
			if err != nil {
				logger.WarnContext(ctx, "rate limiter unavailable", "error", err)
				return next(c)
			}
			if !allowed {
				return apperrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
