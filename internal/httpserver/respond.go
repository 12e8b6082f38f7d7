package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicart/unicart/internal/transport"
)

type errorBody struct {
	Error   string                 `json:"error"`
	Details []transport.FieldError `json:"details,omitempty"`
}

func respondError(c echo.Context, code int, msg string) error {
	return c.JSON(code, errorBody{Error: msg})
}

func respondValidation(c echo.Context, fields []transport.FieldError) error {
	return c.JSON(http.StatusBadRequest, errorBody{Error: "Validation failed", Details: fields})
}
