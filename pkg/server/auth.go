package server

import (
	"encoding/json"
	"net/http"

	"pulsegate/pkg/models"

	"github.com/labstack/echo/v4"
)

// register handles POST /api/register. The payload is validated locally so
// malformed input never reaches the user service.
func (g *Gateway) register(ctx echo.Context) error {
	var req models.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err.Error())
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return err
	}
	return g.relay(ctx, http.MethodPost, "/register", body)
}

// login handles POST /api/login. Credential checking belongs to the user
// service; a 401 from it is relayed with its original body so the dashboard
// can show the real reason.
func (g *Gateway) login(ctx echo.Context) error {
	var req models.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err.Error())
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return err
	}
	return g.relay(ctx, http.MethodPost, "/login", body)
}

// getProfile handles GET /api/profile.
func (g *Gateway) getProfile(ctx echo.Context) error {
	return g.relay(ctx, http.MethodGet, "/profile", nil)
}

// updateProfile handles PUT /api/profile. Only fields the client actually sent
// are forwarded.
func (g *Gateway) updateProfile(ctx echo.Context) error {
	var req models.ProfileUpdate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid JSON payload")
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err.Error())
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return err
	}
	return g.relay(ctx, http.MethodPut, "/profile", body)
}
