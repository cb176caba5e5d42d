package server

import (
	"fmt"
	"net/http"
	"strconv"

	"pulsegate/pkg/log"

	"github.com/labstack/echo/v4"
)

// deleteMonitor handles DELETE /api/monitors/:id, the cascading delete.
//
// Phase 1 removes the authoritative record via the user service. The purge
// only runs after that succeeds: purging first could drop cache entries for a
// monitor that still exists, and skipping the purge on upstream failure keeps
// the cache aligned with a monitor whose deletion was refused.
//
// Phase 2 purges the three derived cache keys concurrently. Individual purge
// failures are logged and swallowed: absent keys read as unknown and the
// checker rewrites them on its next pass, so nothing authoritative is lost.
func (g *Gateway) deleteMonitor(ctx echo.Context) error {
	monitorID, err := monitorIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Monitor id must be an integer")
	}

	resp, err := g.identity.Forward(
		ctx.Request().Context(),
		http.MethodDelete,
		fmt.Sprintf("/monitors/%d", monitorID),
		ctx.Request().Header.Get("Authorization"),
		nil,
	)
	if err != nil {
		log.Error().Err(err).Int("monitor_id", monitorID).Msg("User service unreachable for delete")
		upstreamFailures.Inc()
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "Failed to delete monitor",
		})
	}

	relayedRequests.WithLabelValues(http.MethodDelete, strconv.Itoa(resp.Status)).Inc()

	if resp.Status < http.StatusOK || resp.Status >= http.StatusMultipleChoices {
		log.Warn().Int("monitor_id", monitorID).Int("status", resp.Status).Msg("Authoritative delete refused, cache untouched")
		return writeUpstream(ctx, resp)
	}

	for _, outcome := range g.cache.PurgeMonitor(ctx.Request().Context(), monitorID) {
		if outcome.Err != nil {
			log.Warn().Err(outcome.Err).Str("key", outcome.Key).Int("monitor_id", monitorID).Msg("Cache purge failed")
			purgeFailures.Inc()
		}
	}

	log.Info().Int("monitor_id", monitorID).Msg("Monitor deleted")
	return writeUpstream(ctx, resp)
}
