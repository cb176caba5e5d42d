package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"pulsegate/pkg/models"

	"github.com/labstack/echo/v4"
)

// listMonitors handles GET /api/monitors.
func (g *Gateway) listMonitors(ctx echo.Context) error {
	return g.relay(ctx, http.MethodGet, "/monitors", nil)
}

// createMonitor handles POST /api/monitors. The target URL is normalized to be
// scheme-qualified before forwarding; interval range checks stay with the user
// service, which owns the monitor definition.
func (g *Gateway) createMonitor(ctx echo.Context) error {
	var req models.CreateMonitorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err.Error())
	}

	req.URL = strings.TrimSpace(req.URL)
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		req.URL = "https://" + req.URL
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return err
	}
	return g.relay(ctx, http.MethodPost, "/monitors", body)
}

// listIncidents handles GET /api/monitors/:id/incidents. Incidents live in the
// system of record, not the cache, so they survive cache eviction.
func (g *Gateway) listIncidents(ctx echo.Context) error {
	monitorID, err := monitorIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Monitor id must be an integer")
	}
	return g.relay(ctx, http.MethodGet, fmt.Sprintf("/monitors/%d/incidents", monitorID), nil)
}
