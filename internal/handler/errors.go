package handler

import (
	"errors"
	"net/http"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/apperr"
	"github.com/labstack/echo/v4"
)

// errorResponse maps a structured service error to an HTTP response.
func errorResponse(c echo.Context, err error) error {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindAuth:
		status = http.StatusUnauthorized
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindPersistence:
		status = http.StatusInternalServerError
	}

	body := echo.Map{
		"error": appErr.Message,
		"kind":  appErr.Kind,
	}
	if appErr.Field != "" {
		body["field"] = appErr.Field
	}
	return c.JSON(status, body)
}
