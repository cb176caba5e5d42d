package server

import (
	"net/http"
	"strconv"

	"pulsegate/pkg/identity"
	"pulsegate/pkg/log"

	"github.com/labstack/echo/v4"
)

// relay forwards a request to the user service and writes the upstream answer
// back unchanged. Upstream rejections (4xx/5xx responses) pass through with
// their original bodies; only transport failures are converted into a generic
// service-unavailable response so no network internals leak to the client.
func (g *Gateway) relay(ctx echo.Context, method, path string, body []byte) error {
	resp, err := g.identity.Forward(ctx.Request().Context(), method, path, ctx.Request().Header.Get("Authorization"), body)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("User service unreachable")
		upstreamFailures.Inc()
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "Service unavailable",
		})
	}

	relayedRequests.WithLabelValues(method, strconv.Itoa(resp.Status)).Inc()
	return writeUpstream(ctx, resp)
}

// writeUpstream copies an upstream response to the client verbatim.
func writeUpstream(ctx echo.Context, resp *identity.Response) error {
	if len(resp.Body) == 0 {
		return ctx.NoContent(resp.Status)
	}
	return ctx.JSONBlob(resp.Status, resp.Body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

// monitorIDParam parses the :id route parameter.
func monitorIDParam(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("id"))
}
