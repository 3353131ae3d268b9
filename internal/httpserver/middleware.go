package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/astrion_panel/pkg/metrics"
	loggingmw "github.com/Skotchmaster/astrion_panel/pkg/middleware/logging"
)

// Common is the middleware stack of the panel API, outermost first.
func Common(logger *slog.Logger, m *metrics.Metrics) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echomw.Recover(),
		echomw.RequestID(),
		m.Middleware(),
		loggingmw.RequestLogger(logger),
		echomw.CORS(),
		echomw.Secure(),
	}
}
