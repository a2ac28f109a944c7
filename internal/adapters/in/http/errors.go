package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders handler errors as Error bodies. Echo's own errors
// keep their status; unclassified errors are logged and reported as 500
// without detail.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		code, message := statusOf(err), err.Error()
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}

		if code == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method, "path", c.Path(), "error", err)
			message = http.StatusText(code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
