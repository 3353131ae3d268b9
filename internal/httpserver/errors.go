package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
)

const (
	invalidBodyMessage = "Invalid request body."
	internalMessage    = "Something went wrong. Please try again."
)

// fail logs err under event and maps it to the HTTP error the client sees.
func fail(l *slog.Logger, event string, err error) error {
	switch {
	case errors.Is(err, errx.ErrNotFound):
		l.Warn(event, "status", http.StatusNotFound, "reason", errx.Message(err), "error", err)
		return echo.NewHTTPError(http.StatusNotFound, errx.Message(err))
	case errors.Is(err, errx.ErrValidation):
		l.Warn(event, "status", http.StatusBadRequest, "reason", errx.Message(err), "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, errx.Message(err))
	case errors.Is(err, context.Canceled):
		l.Warn(event, "status", http.StatusServiceUnavailable, "reason", "request cancelled", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Request cancelled.")
	default:
		l.Error(event, "status", http.StatusInternalServerError, "reason", "unexpected error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, internalMessage)
	}
}

func badBody(l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, invalidBodyMessage)
}
