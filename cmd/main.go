package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/tripwise/flight-engine/internal/app/config"
	"github.com/tripwise/flight-engine/internal/app/dto"
	"github.com/tripwise/flight-engine/internal/app/endpoints"
	"github.com/tripwise/flight-engine/internal/app/service"
	"github.com/tripwise/flight-engine/internal/app/transport"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient/aeroapi"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient/aviationstack"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient/duffel"
	"github.com/tripwise/flight-engine/internal/pkg/flightclient/serpflights"
	"github.com/tripwise/flight-engine/internal/pkg/logger"
)

// @title           Flight Engine API
// @version         0.0.1
// @description     flight-data aggregation and resolution engine
// @host      localhost:8080
// @BasePath  /
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	limiter := makeLimiter(cfg)

	// upstream clients
	duffelClient := duffel.NewClient(flightclient.Config{
		BaseURL:      cfg.Providers.Duffel.APIURL,
		Credential:   cfg.Providers.Duffel.APIToken,
		Timeout:      cfg.Providers.Duffel.Timeout,
		RateLimitRPS: cfg.Providers.RateLimitRPS,
		Limiter:      limiter,
	})
	serpClient := serpflights.NewClient(flightclient.Config{
		BaseURL:      cfg.Providers.Serp.APIURL,
		Credential:   cfg.Providers.Serp.APIKey,
		Timeout:      cfg.Providers.Serp.Timeout,
		RateLimitRPS: cfg.Providers.RateLimitRPS,
		Limiter:      limiter,
	})
	aeroClient := aeroapi.NewClient(flightclient.Config{
		BaseURL:      cfg.Providers.AeroAPI.APIURL,
		Credential:   cfg.Providers.AeroAPI.APIKey,
		Timeout:      cfg.Providers.AeroAPI.Timeout,
		RateLimitRPS: cfg.Providers.RateLimitRPS,
		Limiter:      limiter,
	})
	legacyClient := aviationstack.NewClient(flightclient.Config{
		BaseURL:      cfg.Providers.AviationStack.APIURL,
		Credential:   cfg.Providers.AviationStack.AccessKey,
		Timeout:      cfg.Providers.AviationStack.Timeout,
		RateLimitRPS: cfg.Providers.RateLimitRPS,
		Limiter:      limiter,
	})

	// services
	offerService := service.NewOfferService(duffelClient, serpClient, serpClient)
	matrixService := service.NewMatrixService(serpClient,
		cfg.Matrix.DefaultDays, cfg.Matrix.MaxDays, cfg.Matrix.DestinationList())
	statusService := service.NewStatusService(aeroClient, aeroClient, legacyClient,
		cfg.Status.FarFutureDays)

	return endpoints.Endpoints{
		FlightEndpoint: endpoints.MakeFlightEndpoint(offerService, matrixService, statusService),
	}
}

// makeLimiter builds the shared outbound rate limiter. With no Redis
// configured the clients skip limiting entirely.
func makeLimiter(cfg *config.Config) *redis_rate.Limiter {
	if cfg.Redis.Addr == "" {
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return redis_rate.NewLimiter(redisClient)
}
