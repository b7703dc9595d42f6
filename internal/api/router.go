package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sonex-on/beta1-portfolio/internal/api/handlers"
	custommiddleware "github.com/sonex-on/beta1-portfolio/internal/api/middleware"
	"github.com/sonex-on/beta1-portfolio/internal/config"
	"github.com/sonex-on/beta1-portfolio/internal/service"
)

// Services bundles everything the router needs. SettingsService may be nil
// when no encryption key is configured; the settings routes are then omitted.
type Services struct {
	System      *service.SystemService
	Portfolio   *service.PortfolioService
	Transaction *service.TransactionService
	Asset       *service.AssetService
	Settings    *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", portfolioHandler.GetPortfolio)
				r.Delete("/", portfolioHandler.DeletePortfolio)
				r.Post("/archive", portfolioHandler.ArchivePortfolio)
				r.Get("/positions", portfolioHandler.PortfolioPositions)
				r.Get("/history", portfolioHandler.PortfolioHistory)
				r.Get("/statistics", portfolioHandler.PortfolioStatistics)
			})
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Post("/import", transactionHandler.ImportTransactions)

			r.Route("/portfolio/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.TransactionsPerPortfolio)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/asset", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(svc.Asset)
			r.Get("/", assetHandler.SearchAssets)
			r.Get("/{symbol}/quote", assetHandler.GetQuote)
		})

		if svc.Settings != nil {
			r.Route("/settings", func(r chi.Router) {
				settingsHandler := handlers.NewSettingsHandler(svc.Settings)
				r.Get("/marketdata", settingsHandler.ProviderTokenStatus)
				r.Put("/marketdata", settingsHandler.SetProviderToken)
			})
		}
	})

	return r
}
