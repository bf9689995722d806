package middleware

import (
	"net/http"

	"mySkinMatch/pkg/logger"
	jsonres "mySkinMatch/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the global echo error handler. Anything a handler did not
// already turn into a response ends up here as a generic JSON envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Request().URL.Path)
	}

	if encodeErr := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); encodeErr != nil {
		logger.Error("Failed to write error response", encodeErr)
	}
}
