package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/api/request"
	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/testutil"
)

// TestTransactionService_CreateTransaction tests transaction creation.
//
// WHY: Creation is where the over-sell guard lives. A sell that exceeds the
// held quantity must never reach the database; the valuation engine's clamp
// is a second line of defense, not the contract.
func TestTransactionService_CreateTransaction(t *testing.T) {
	createReq := func(portfolioID, txType string, qty float64) request.CreateTransactionRequest {
		return request.CreateTransactionRequest{
			PortfolioID: portfolioID,
			AssetID:     "AAPL",
			Date:        "2024-01-02",
			Type:        txType,
			Quantity:    qty,
			UnitPrice:   150,
		}
	}

	t.Run("creates a buy transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		portfolio := testutil.CreatePortfolio(t, db, "Main")

		tx, err := svc.CreateTransaction(context.Background(), createReq(portfolio.ID, model.TransactionBuy, 10))
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}

		if tx.ID == "" {
			t.Error("Expected generated transaction ID")
		}
		if tx.AssetID != "AAPL" {
			t.Errorf("Expected asset AAPL, got %q", tx.AssetID)
		}

		stored, err := svc.GetTransaction(tx.ID)
		if err != nil {
			t.Fatalf("GetTransaction() returned unexpected error: %v", err)
		}
		if stored.Quantity != 10 || stored.UnitPrice != 150 {
			t.Errorf("Stored transaction mismatch: %+v", stored)
		}
	})

	t.Run("normalizes the symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		portfolio := testutil.CreatePortfolio(t, db, "Main")

		req := createReq(portfolio.ID, model.TransactionBuy, 1)
		req.AssetID = " aapl "

		tx, err := svc.CreateTransaction(context.Background(), req)
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}
		if tx.AssetID != "AAPL" {
			t.Errorf("Expected normalized symbol AAPL, got %q", tx.AssetID)
		}
	})

	t.Run("rejects a sell exceeding held quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		testutil.Buy(t, db, portfolio.ID, "AAPL", 10, 100, testutil.Date(2024, time.January, 1))

		_, err := svc.CreateTransaction(context.Background(), createReq(portfolio.ID, model.TransactionSell, 25))
		if !errors.Is(err, apperrors.ErrInsufficientQuantity) {
			t.Errorf("Expected ErrInsufficientQuantity, got %v", err)
		}

		transactions, err := svc.GetTransactions(portfolio.ID)
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if len(transactions) != 1 {
			t.Errorf("Expected rejected sell to not be stored, got %d transactions", len(transactions))
		}
	})

	t.Run("allows a sell of exactly the held quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		testutil.Buy(t, db, portfolio.ID, "AAPL", 10, 100, testutil.Date(2024, time.January, 1))

		if _, err := svc.CreateTransaction(context.Background(), createReq(portfolio.ID, model.TransactionSell, 10)); err != nil {
			t.Errorf("Expected full close to be allowed, got %v", err)
		}
	})

	t.Run("rejects an unknown portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(context.Background(), createReq(testutil.MakeID(), model.TransactionBuy, 1))
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
	})
}

// TestTransactionService_GetTransactions tests listing with name enrichment.
func TestTransactionService_GetTransactions(t *testing.T) {
	t.Run("returns transactions in date order with catalog names", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		testutil.CreateAsset(t, db, "AAPL", "Apple Inc.", "stock")

		testutil.Buy(t, db, portfolio.ID, "AAPL", 5, 120, testutil.Date(2024, time.February, 1))
		testutil.Buy(t, db, portfolio.ID, "AAPL", 10, 100, testutil.Date(2024, time.January, 1))

		transactions, err := svc.GetTransactions(portfolio.ID)
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}

		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].Date.After(transactions[1].Date) {
			t.Error("Expected ascending date order")
		}
		if transactions[0].AssetName != "Apple Inc." {
			t.Errorf("Expected catalog name, got %q", transactions[0].AssetName)
		}
	})

	t.Run("falls back to the symbol for unknown assets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		testutil.Buy(t, db, portfolio.ID, "OBSCURE.WA", 1, 10, testutil.Date(2024, time.January, 1))

		transactions, err := svc.GetTransactions(portfolio.ID)
		if err != nil {
			t.Fatalf("GetTransactions() returned unexpected error: %v", err)
		}
		if transactions[0].AssetName != "OBSCURE.WA" {
			t.Errorf("Expected symbol fallback, got %q", transactions[0].AssetName)
		}
	})
}

// TestTransactionService_DeleteTransaction tests deletion.
func TestTransactionService_DeleteTransaction(t *testing.T) {
	t.Run("removes an existing transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		tx := testutil.Buy(t, db, portfolio.ID, "AAPL", 10, 100, testutil.Date(2024, time.January, 1))

		if err := svc.DeleteTransaction(context.Background(), tx.ID); err != nil {
			t.Fatalf("DeleteTransaction() returned unexpected error: %v", err)
		}

		if _, err := svc.GetTransaction(tx.ID); !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound after delete, got %v", err)
		}
	})

	t.Run("reports a missing transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		if err := svc.DeleteTransaction(context.Background(), testutil.MakeID()); !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}
