package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/api"
	"github.com/sonex-on/beta1-portfolio/internal/config"
	"github.com/sonex-on/beta1-portfolio/internal/database"
	"github.com/sonex-on/beta1-portfolio/internal/logging"
	"github.com/sonex-on/beta1-portfolio/internal/marketdata"
	"github.com/sonex-on/beta1-portfolio/internal/repository"
	"github.com/sonex-on/beta1-portfolio/internal/scheduler"
	"github.com/sonex-on/beta1-portfolio/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})
	logging.SetGlobalLogger(logger)

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	logger.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Market data: Yahoo chart API behind a TTL cache
	provider := marketdata.NewYahooClient()
	cache := marketdata.NewCache(provider, cfg.MarketData.QuoteTTL, cfg.MarketData.HistoryTTL)

	// Create repositories
	portfolioRepo := repository.NewPortfolioRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	transactionService := service.NewTransactionService(
		transactionRepo,
		portfolioRepo,
		assetRepo,
	)
	portfolioService := service.NewPortfolioService(
		portfolioRepo,
		transactionRepo,
		assetRepo,
		cache,
		cache,
		cfg.Analytics.RiskFreeRate,
	)
	assetService := service.NewAssetService(assetRepo, cache)

	var settingsService *service.SettingsService
	if cfg.MarketData.FernetKey != "" {
		settingsService, err = service.NewSettingsService(settingsRepo, cfg.MarketData.FernetKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize settings service")
		}
	} else {
		logger.Warn().Msg("SETTINGS_FERNET_KEY not set, settings endpoints disabled")
	}

	// Background price pre-fetch
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(cache, transactionRepo, logger)
		if err := sched.Start(); err != nil {
			logger.Fatal().Err(err).Msg("failed to start scheduler")
		}
		defer sched.Stop()
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Portfolio:   portfolioService,
		Transaction: transactionService,
		Asset:       assetService,
		Settings:    settingsService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
