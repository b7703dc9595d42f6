package request

type CreateTransactionRequest struct {
	PortfolioID string  `json:"portfolioId"`
	AssetID     string  `json:"assetId"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}
