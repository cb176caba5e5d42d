package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pulsegate/pkg/cache"
	"pulsegate/pkg/config"
	"pulsegate/pkg/identity"
	"pulsegate/pkg/log"
	"pulsegate/pkg/server"
)

const (
	defaultRetryMax       = 2
	defaultRetryWaitMin   = 500 * time.Millisecond
	defaultRetryWaitMax   = 5 * time.Second
	defaultRequestTimeout = 15 * time.Second
	startupPingTimeout    = 5 * time.Second
)

func main() {
	// Initialize logger
	_ = log.Logger

	// Env first (optionally from .env), flags override
	_ = godotenv.Load()
	cfg := config.Load()

	addr := flag.String("addr", cfg.ListenAddr, "Gateway listen address")
	redisURL := flag.String("redis-url", cfg.RedisURL, "Cache store connection URL")
	userServiceURL := flag.String("user-service-url", cfg.UserServiceURL, "User service base URL")
	webDir := flag.String("web-dir", cfg.WebDir, "Directory with built dashboard assets (empty disables static serving)")
	retryMax := flag.Int("retry-max", defaultRetryMax, "Maximum connection-level retries for upstream calls")
	retryWaitMin := flag.Duration("retry-wait-min", defaultRetryWaitMin, "Minimum wait time between retries")
	retryWaitMax := flag.Duration("retry-wait-max", defaultRetryWaitMax, "Maximum wait time between retries")
	requestTimeout := flag.Duration("request-timeout", defaultRequestTimeout, "Upstream request timeout")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *debug {
		log.SetDebugMode()
		log.Debug().Msg("Debug mode enabled")
	}

	store, err := cache.NewRedisStore(*redisURL)
	if err != nil {
		log.Fatal().Err(err).Str("redis_url", *redisURL).Msg("Invalid cache store configuration")
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	if err := store.Ping(pingCtx); err != nil {
		// The cache is rebuilt from checker output; start anyway and let
		// reads degrade until the store comes back.
		log.Warn().Err(err).Str("redis_url", *redisURL).Msg("Cache store unreachable at startup")
	}
	cancel()

	identityClient := identity.NewClient(*userServiceURL, *retryMax, *retryWaitMin, *retryWaitMax, *requestTimeout)

	log.Info().
		Str("user_service_url", *userServiceURL).
		Str("redis_url", *redisURL).
		Dur("request_timeout", *requestTimeout).
		Msg("Configured backends")

	gateway := server.NewGateway(store, identityClient, *webDir)
	if err := gateway.Start(*addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}

	os.Exit(0)
}
