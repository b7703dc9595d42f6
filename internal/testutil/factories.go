package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// MakeID generates a fresh UUID string for test entities.
func MakeID() string {
	return uuid.New().String()
}

// Date builds a midnight-UTC time from year, month and day. Transaction and
// price dates throughout the engine are normalized this way.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// PortfolioBuilder provides a fluent interface for creating test portfolios.
//
// Example usage:
//
//	// Simple creation with defaults
//	portfolio := testutil.NewPortfolio().Build(t, db)
//
//	// Customized portfolio
//	portfolio := testutil.NewPortfolio().
//	    WithName("Custom Portfolio").
//	    Archived().
//	    Build(t, db)
type PortfolioBuilder struct {
	ID          string
	Name        string
	Description string
	IsArchived  bool
}

// NewPortfolio creates a PortfolioBuilder with sensible defaults.
func NewPortfolio() *PortfolioBuilder {
	return &PortfolioBuilder{
		ID:          MakeID(),
		Name:        "Test Portfolio",
		Description: "Test description",
	}
}

// WithID sets a custom ID.
func (b *PortfolioBuilder) WithID(id string) *PortfolioBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PortfolioBuilder) WithName(name string) *PortfolioBuilder {
	b.Name = name
	return b
}

// Archived marks the portfolio as archived.
func (b *PortfolioBuilder) Archived() *PortfolioBuilder {
	b.IsArchived = true
	return b
}

// Build creates the portfolio in the database and returns it.
func (b *PortfolioBuilder) Build(t *testing.T, db *sql.DB) model.Portfolio {
	t.Helper()

	query := `
		INSERT INTO portfolio (id, name, description, is_archived)
		VALUES (?, ?, ?, ?)
	`
	if _, err := db.Exec(query, b.ID, b.Name, b.Description, b.IsArchived); err != nil {
		t.Fatalf("Failed to create test portfolio: %v", err)
	}

	return model.Portfolio{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		IsArchived:  b.IsArchived,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction(portfolio.ID).
//	    WithAsset("AAPL").
//	    Sell().
//	    WithQuantity(3).
//	    WithUnitPrice(150).
//	    OnDate(testutil.Date(2024, 3, 1)).
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	PortfolioID string
	AssetID     string
	Type        string
	Quantity    float64
	UnitPrice   float64
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults: a buy
// of 10 units at 100 dated 2024-01-02.
func NewTransaction(portfolioID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:          MakeID(),
		PortfolioID: portfolioID,
		AssetID:     "AAPL",
		Type:        model.TransactionBuy,
		Quantity:    10,
		UnitPrice:   100,
		Date:        Date(2024, time.January, 2),
		CreatedAt:   time.Now().UTC(),
	}
}

// WithAsset sets the asset symbol.
func (b *TransactionBuilder) WithAsset(assetID string) *TransactionBuilder {
	b.AssetID = assetID
	return b
}

// Sell marks the transaction as a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionSell
	return b
}

// WithQuantity sets the quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithUnitPrice sets the unit price.
func (b *TransactionBuilder) WithUnitPrice(price float64) *TransactionBuilder {
	b.UnitPrice = price
	return b
}

// OnDate sets the transaction date.
func (b *TransactionBuilder) OnDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO portfolio_transaction (id, portfolio_id, asset_id, type, quantity, unit_price, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.Exec(query,
		b.ID, b.PortfolioID, b.AssetID, b.Type, b.Quantity, b.UnitPrice,
		b.Date.Format("2006-01-02"),
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		PortfolioID: b.PortfolioID,
		AssetID:     b.AssetID,
		Type:        b.Type,
		Quantity:    b.Quantity,
		UnitPrice:   b.UnitPrice,
		Date:        b.Date,
		CreatedAt:   b.CreatedAt,
	}
}

// Convenience functions

// CreatePortfolio creates a portfolio with the given name and default values.
func CreatePortfolio(t *testing.T, db *sql.DB, name string) model.Portfolio {
	t.Helper()
	return NewPortfolio().WithName(name).Build(t, db)
}

// CreateAsset inserts a catalog asset.
func CreateAsset(t *testing.T, db *sql.DB, symbol, name, category string) model.Asset {
	t.Helper()

	query := `INSERT INTO asset (symbol, name, category) VALUES (?, ?, ?)`
	if _, err := db.Exec(query, symbol, name, category); err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}
	return model.Asset{Symbol: symbol, Name: name, Category: category}
}

// Buy creates a buy transaction for the given asset, quantity and price.
func Buy(t *testing.T, db *sql.DB, portfolioID, assetID string, quantity, price float64, date time.Time) model.Transaction {
	t.Helper()
	return NewTransaction(portfolioID).
		WithAsset(assetID).
		WithQuantity(quantity).
		WithUnitPrice(price).
		OnDate(date).
		Build(t, db)
}

// Sell creates a sell transaction for the given asset, quantity and price.
func Sell(t *testing.T, db *sql.DB, portfolioID, assetID string, quantity, price float64, date time.Time) model.Transaction {
	t.Helper()
	return NewTransaction(portfolioID).
		WithAsset(assetID).
		Sell().
		WithQuantity(quantity).
		WithUnitPrice(price).
		OnDate(date).
		Build(t, db)
}
