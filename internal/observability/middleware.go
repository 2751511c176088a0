package observability

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs every control API request, escalating the level for
// client and server errors.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			} else if status >= 400 {
				level = slog.LevelWarn
			}

			logger.Log(c.Request().Context(), level, "http_request",
				"method", c.Request().Method,
				"path", routePath(c),
				"status", status,
				"duration", time.Since(start),
				"client_ip", c.RealIP(),
				"bytes", c.Response().Size,
			)

			return nil
		}
	}
}

func RequestMetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			RecordHTTPRequest(c.Request().Method, routePath(c), c.Response().Status, time.Since(start))

			return nil
		}
	}
}

func routePath(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return c.Request().URL.Path
}
