package model

import "time"

// Transaction types accepted by the engine.
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// Transaction represents a single buy or sell of an asset within a portfolio.
// Transactions are immutable once created: corrections are delete + recreate.
type Transaction struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolioId"`
	AssetID     string    `json:"assetId"`
	Type        string    `json:"type"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// TransactionResponse represents a transaction with enriched data for API responses.
// Includes the asset display name resolved from the catalog.
type TransactionResponse struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolioId"`
	AssetID     string    `json:"assetId"`
	AssetName   string    `json:"assetName"`
	Type        string    `json:"type"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Date        time.Time `json:"date"`
}
