package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskmarket.com/taskmarket/internal/errors"
)

// ErrorHandler renders every error as the failure envelope. Errors that are
// not expected exceptions are logged and reported as a bare 500.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			appErr  *apperrors.Exception
			httpErr *echo.HTTPError
			status  int
			body    envelope
		)
		switch {
		case errors.As(err, &appErr):
			status = appErr.StatusCode
			body = envelope{Message: appErr.Message, Errors: appErr.Details}
		case errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError:
			status = httpErr.Code
			body = envelope{Message: fmt.Sprint(httpErr.Message)}
		default:
			logger.ErrorContext(c.Request().Context(), "request failed",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			status = http.StatusInternalServerError
			body = envelope{Message: "internal server error"}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
