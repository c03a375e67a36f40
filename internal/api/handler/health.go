package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles the GET /health liveness probe. The service has no
// external dependencies, so liveness is the whole story.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
