package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// health handles GET /api/health. It is a pure liveness probe and touches no
// backing system.
func (g *Gateway) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pulsegate",
	})
}
