package server

import (
	"net/http"

	"pulsegate/pkg/log"

	"github.com/labstack/echo/v4"
)

// getStatus handles GET /api/status/:id with a direct cache store read. The
// user service is never involved. A monitor the checker has not observed yet
// reads as null, which the dashboard renders as "pending" rather than down.
func (g *Gateway) getStatus(ctx echo.Context) error {
	monitorID, err := monitorIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Monitor id must be an integer")
	}

	snapshot, err := g.cache.Status(ctx.Request().Context(), monitorID)
	if err != nil {
		log.Error().Err(err).Int("monitor_id", monitorID).Msg("Failed to fetch status from cache")
		cacheReadFailures.WithLabelValues("status").Inc()
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch status",
		})
	}

	return ctx.JSON(http.StatusOK, snapshot)
}
