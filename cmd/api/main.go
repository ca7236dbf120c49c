package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"skyvoyager/internal/airports"
	"skyvoyager/internal/catalog"
	"skyvoyager/internal/config"
	"skyvoyager/internal/logger"
	"skyvoyager/internal/metrics"
	"skyvoyager/internal/router"
	"skyvoyager/internal/services"
	"skyvoyager/internal/store"
	"skyvoyager/internal/ticket"
	"skyvoyager/internal/validator"
)

// @title           SkyVoyager API
// @version         1.0
// @description     SkyVoyager is a flight booking demo with demand-based pricing, a mock wallet and an admin console.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()
	ctx := context.Background()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	st, closeStore, err := store.Open(ctx, appConfig)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warnf("store close error: %v", err)
		}
	}()

	// Airport data: provider first, built-in table as fallback, then the
	// persisted list for every later lookup.
	provider := airports.NewMockAmadeus(appConfig.AirportLookupLatency)
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	_, err = airports.Seed(seedCtx, st, provider, airports.NewStaticDirectory())
	cancel()
	if err != nil {
		return fmt.Errorf("failed to seed airport data: %w", err)
	}
	directory := airports.NewStoreDirectory(st)
	lookup := airports.Chain{directory, provider}

	validator.Register()
	m := metrics.New("skyvoyager")
	now := time.Now

	// Initialize services
	walletService := services.NewWalletService(st, m, now, appConfig.WalletInitialBalance)
	svc := router.Services{
		Users:           services.NewUserService(st, now),
		Flights:         services.NewFlightService(st, lookup, catalog.NewRandomGenerator(), services.NewLogNotifier(), m, now, appConfig.CatalogSize),
		Wallet:          walletService,
		Bookings:        services.NewBookingService(st, walletService, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), m, now),
		Destinations:    services.NewDestinationService(st),
		BookingRequests: services.NewBookingRequestService(st, now),
		Airports:        directory,
		Renderer:        ticket.NewRenderer(),
		Metrics:         m,
	}

	engine := router.New(svc)

	log.Infof("Starting SkyVoyager backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
