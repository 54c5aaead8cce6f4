package handler

import (
	"net/http"

	"sentimenta/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Status reports service liveness.
func Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
