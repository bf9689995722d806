package middleware

import (
	"context"

	"mySkinMatch/business/recommender"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const traceHeader = "X-Trace-ID"

// TraceID attaches a request trace ID to the context. An inbound X-Trace-ID
// header is honored so callers can correlate across services.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(traceHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := context.WithValue(c.Request().Context(), recommender.TraceIDKey, traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(traceHeader, traceID)

			return next(c)
		}
	}
}
