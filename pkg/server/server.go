package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulsegate/pkg/cache"
	"pulsegate/pkg/identity"
	"pulsegate/pkg/log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10

// Gateway serves the dashboard API. It holds no data of its own: monitor
// definitions and incidents come from the user service, live status and
// history from the cache store. No cross-request state means any number of
// gateway instances can run behind a load balancer.
type Gateway struct {
	echo     *echo.Echo
	cache    cache.Store
	identity *identity.Client
	webDir   string
}

// NewGateway creates a gateway over the given backing systems. webDir
// optionally points at built dashboard assets; empty disables static serving.
func NewGateway(cacheStore cache.Store, identityClient *identity.Client, webDir string) *Gateway {
	return &Gateway{
		echo:     echo.New(),
		cache:    cacheStore,
		identity: identityClient,
		webDir:   webDir,
	}
}

// Start runs the gateway until SIGINT/SIGTERM, then shuts down gracefully.
func (g *Gateway) Start(addr string) error {
	g.setupRoutes()

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("addr", addr).
			Str("web_dir", g.webDir).
			Msg("Starting uptime gateway")

		if err := g.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return g.Shutdown()
}

// Shutdown stops the listener with a bounded timeout and releases the cache
// store connection.
func (g *Gateway) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout*time.Second)
	defer cancel()

	if err := g.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	if err := g.cache.Close(); err != nil {
		log.Warn().Err(err).Msg("Cache store close failed")
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (g *Gateway) setupRoutes() {
	// Echo configuration
	g.echo.HideBanner = true
	g.echo.HidePort = true

	// Setup middleware with custom logger
	g.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${status} ${method} ${uri} (${latency_human})\n",
	}))
	g.echo.Use(middleware.Recover())
	g.echo.Use(middleware.CORS())

	api := g.echo.Group("/api")
	api.GET("/health", g.health)

	// Relayed routes backed by the user service
	api.POST("/register", g.register)
	api.POST("/login", g.login)
	api.GET("/profile", g.getProfile)
	api.PUT("/profile", g.updateProfile)
	api.GET("/monitors", g.listMonitors)
	api.POST("/monitors", g.createMonitor)
	api.DELETE("/monitors/:id", g.deleteMonitor)
	api.GET("/monitors/:id/incidents", g.listIncidents)

	// Direct cache store reads for real-time stats
	api.GET("/status/:id", g.getStatus)
	api.GET("/history/:id", g.getHistory)

	g.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Serve the built dashboard when configured
	if g.webDir != "" {
		g.echo.Static("/", g.webDir)
	}
}
