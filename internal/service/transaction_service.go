package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sonex-on/beta1-portfolio/internal/api/request"
	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/repository"
	"github.com/sonex-on/beta1-portfolio/internal/validation"
)

// TransactionService handles transaction-related business logic operations.
// It owns the over-sell guard: sells exceeding the currently held quantity
// are rejected here, before the valuation engine ever sees them.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	portfolioRepo   *repository.PortfolioRepository
	assetRepo       *repository.AssetRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	portfolioRepo *repository.PortfolioRepository,
	assetRepo *repository.AssetRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		portfolioRepo:   portfolioRepo,
		assetRepo:       assetRepo,
	}
}

// GetTransactions retrieves all transactions for a portfolio, enriched with
// catalog display names, in ascending date order.
func (s *TransactionService) GetTransactions(portfolioID string) ([]model.TransactionResponse, error) {
	transactions, err := s.transactionRepo.GetTransactions(portfolioID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.TransactionResponse, len(transactions))
	for i, t := range transactions {
		name := s.assetRepo.GetAssetName(t.AssetID)
		if name == "" {
			name = t.AssetID
		}
		responses[i] = model.TransactionResponse{
			ID:          t.ID,
			PortfolioID: t.PortfolioID,
			AssetID:     t.AssetID,
			AssetName:   name,
			Type:        t.Type,
			Quantity:    t.Quantity,
			UnitPrice:   t.UnitPrice,
			Date:        t.Date,
		}
	}
	return responses, nil
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction validates and stores a new transaction.
//
// The portfolio must exist, the symbol is normalized, and a sell may not
// exceed the net quantity currently held for the asset across the
// portfolio's whole transaction history.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(req.PortfolioID); err != nil {
		return nil, err
	}

	symbol, err := validation.NormalizeSymbol(req.AssetID)
	if err != nil {
		return nil, err
	}

	transactionDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	if req.Type == model.TransactionSell {
		held, err := s.heldQuantity(req.PortfolioID, symbol)
		if err != nil {
			return nil, err
		}
		if req.Quantity > held {
			return nil, fmt.Errorf("%w: requested %g, held %g", apperrors.ErrInsufficientQuantity, req.Quantity, held)
		}
	}

	transaction := &model.Transaction{
		ID:          uuid.New().String(),
		PortfolioID: req.PortfolioID,
		AssetID:     symbol,
		Type:        req.Type,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Date:        transactionDate,
		CreatedAt:   time.Now(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction. Transactions are immutable, so
// corrections are delete + recreate.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}

// heldQuantity nets the buys and sells of one asset across the portfolio's
// full transaction history.
func (s *TransactionService) heldQuantity(portfolioID, assetID string) (float64, error) {
	transactions, err := s.transactionRepo.GetTransactions(portfolioID)
	if err != nil {
		return 0, err
	}
	held := 0.0
	for _, t := range transactions {
		if t.AssetID != assetID {
			continue
		}
		switch t.Type {
		case model.TransactionBuy:
			held += t.Quantity
		case model.TransactionSell:
			held -= t.Quantity
		}
	}
	if held < 0 {
		held = 0
	}
	return held, nil
}
