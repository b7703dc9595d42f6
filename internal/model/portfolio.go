package model

// Portfolio represents a portfolio from the database
type Portfolio struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsArchived  bool   `json:"isArchived"`
}

// PortfolioFilter for querying portfolios
type PortfolioFilter struct {
	IncludeArchived bool
}

// PortfolioSummary represents the current state of a portfolio: its open
// positions plus the aggregate valuation across them. All monetary values are
// in the portfolio currency with no formatting applied.
type PortfolioSummary struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Positions          []Position `json:"positions"`
	TotalValue         float64    `json:"totalValue"`
	TotalCost          float64    `json:"totalCost"`
	TotalUnrealizedPnL float64    `json:"totalUnrealizedPnl"`
	IsArchived         bool       `json:"isArchived"`
}
