package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sonex-on/beta1-portfolio/internal/analytics"
	"github.com/sonex-on/beta1-portfolio/internal/api/request"
	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/repository"
)

// PortfolioService handles portfolio-related business logic operations.
// It coordinates the transaction store, the market-data collaborator and the
// analytics engine to produce position summaries, historical series and
// statistics snapshots. All derived data is recomputed in full from the
// transaction list on every request; nothing is mutated incrementally.
type PortfolioService struct {
	portfolioRepo   *repository.PortfolioRepository
	transactionRepo *repository.TransactionRepository
	assetRepo       *repository.AssetRepository

	aggregator    *analytics.PositionAggregator
	seriesBuilder *analytics.SeriesBuilder
	riskFreeRate  float64
}

// NewPortfolioService creates a new PortfolioService with the provided
// repositories and market-data sources.
func NewPortfolioService(
	portfolioRepo *repository.PortfolioRepository,
	transactionRepo *repository.TransactionRepository,
	assetRepo *repository.AssetRepository,
	quotes analytics.QuoteSource,
	prices analytics.PriceSource,
	riskFreeRate float64,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo:   portfolioRepo,
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
		aggregator:      analytics.NewPositionAggregator(quotes),
		seriesBuilder:   analytics.NewSeriesBuilder(prices),
		riskFreeRate:    riskFreeRate,
	}
}

// GetPortfolios retrieves portfolios, optionally including archived ones.
func (s *PortfolioService) GetPortfolios(includeArchived bool) ([]model.Portfolio, error) {
	return s.portfolioRepo.GetPortfolios(model.PortfolioFilter{IncludeArchived: includeArchived})
}

// GetPortfolio retrieves a single portfolio by its ID.
func (s *PortfolioService) GetPortfolio(portfolioID string) (model.Portfolio, error) {
	return s.portfolioRepo.GetPortfolioOnID(portfolioID)
}

// CreatePortfolio stores a new portfolio.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, req request.CreatePortfolioRequest) (*model.Portfolio, error) {
	portfolio := &model.Portfolio{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.portfolioRepo.InsertPortfolio(ctx, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// ArchivePortfolio marks a portfolio as archived without deleting its data.
func (s *PortfolioService) ArchivePortfolio(ctx context.Context, portfolioID string) error {
	return s.portfolioRepo.SetArchived(ctx, portfolioID, true)
}

// DeletePortfolio removes a portfolio and all its transactions.
func (s *PortfolioService) DeletePortfolio(ctx context.Context, portfolioID string) error {
	return s.portfolioRepo.DeletePortfolio(ctx, portfolioID)
}

// GetPortfolioSummary computes the current open positions and aggregate
// valuation for a portfolio. Price lookups degrade to cost-basis valuation;
// the summary never fails because of market data.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context, portfolioID string) (model.PortfolioSummary, error) {
	portfolio, err := s.portfolioRepo.GetPortfolioOnID(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	transactions, err := s.transactionRepo.GetTransactions(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	positions := s.aggregator.Aggregate(ctx, transactions)

	summary := model.PortfolioSummary{
		ID:          portfolio.ID,
		Name:        portfolio.Name,
		Description: portfolio.Description,
		Positions:   positions,
		IsArchived:  portfolio.IsArchived,
	}
	for i, p := range positions {
		// Prefer the catalog display name when the provider had none.
		if p.Name == p.AssetID {
			if name := s.assetRepo.GetAssetName(p.AssetID); name != "" {
				positions[i].Name = name
			}
		}
		summary.TotalValue += p.CurrentValue
		summary.TotalCost += p.NetQuantity * p.AverageCost
		summary.TotalUnrealizedPnL += p.UnrealizedPnL
	}

	return summary, nil
}

// GetPortfolioHistory reconstructs the daily value and invested-capital
// series for a portfolio since its first transaction, together with the
// derived growth, profit, drawdown and margin series. A portfolio with no
// usable price history yields empty series, not an error.
func (s *PortfolioService) GetPortfolioHistory(ctx context.Context, portfolioID string) (model.PortfolioHistory, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(portfolioID); err != nil {
		return model.PortfolioHistory{}, err
	}

	transactions, err := s.transactionRepo.GetTransactions(portfolioID)
	if err != nil {
		return model.PortfolioHistory{}, err
	}

	value, capital := s.seriesBuilder.Build(ctx, transactions)

	return model.PortfolioHistory{
		Value:    value,
		Capital:  capital,
		Growth:   analytics.GrowthSeries(value),
		Profit:   analytics.ProfitSeries(value, capital),
		Drawdown: analytics.DrawdownSeries(value),
		Margin:   analytics.MarginSeries(value, capital),
	}, nil
}

// GetPortfolioStatistics reconstructs the value/capital series and computes
// the statistics snapshot. Insufficient history yields the all-zero
// snapshot, never an error.
func (s *PortfolioService) GetPortfolioStatistics(ctx context.Context, portfolioID string) (model.StatisticsSnapshot, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(portfolioID); err != nil {
		return model.StatisticsSnapshot{}, err
	}

	transactions, err := s.transactionRepo.GetTransactions(portfolioID)
	if err != nil {
		return model.StatisticsSnapshot{}, err
	}

	value, capital := s.seriesBuilder.Build(ctx, transactions)
	return analytics.ComputeStatistics(value, capital, s.riskFreeRate), nil
}

// OldestTransactionDate exposes the earliest transaction date across all
// portfolios; the scheduler uses it to bound pre-fetches.
func (s *PortfolioService) OldestTransactionDate() time.Time {
	return s.transactionRepo.GetOldestTransactionDate()
}
