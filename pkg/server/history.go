package server

import (
	"net/http"

	"pulsegate/pkg/log"

	"github.com/labstack/echo/v4"
)

// getHistory handles GET /api/history/:id. The cache store returns at most
// cache.HistoryLimit points in chronological order for the latency sparkline;
// a monitor without history yields an empty array.
func (g *Gateway) getHistory(ctx echo.Context) error {
	monitorID, err := monitorIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Monitor id must be an integer")
	}

	points, err := g.cache.History(ctx.Request().Context(), monitorID)
	if err != nil {
		log.Error().Err(err).Int("monitor_id", monitorID).Msg("Failed to fetch history from cache")
		cacheReadFailures.WithLabelValues("history").Inc()
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch history",
		})
	}

	return ctx.JSON(http.StatusOK, points)
}
