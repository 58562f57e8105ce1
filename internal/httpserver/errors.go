package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/logging"
)

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorHandler translates business errors into status codes. Anything
// outside the taxonomy becomes a plain 500 so internals never leak.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	} else if kind := apperr.KindOf(err); kind != apperr.KindInternal {
		message = err.Error()
		switch kind {
		case apperr.KindBadRequest:
			code = http.StatusBadRequest
		case apperr.KindUnauthorized:
			code = http.StatusUnauthorized
		case apperr.KindForbidden:
			code = http.StatusForbidden
		case apperr.KindNotFound:
			code = http.StatusNotFound
		case apperr.KindConflict:
			code = http.StatusConflict
		}
	}

	if code == http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).Error("unhandled error",
			"path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, errorBody{Status: "error", Message: message})
}
