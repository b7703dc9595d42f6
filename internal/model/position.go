package model

// Position represents the net open exposure in a single asset, derived from
// the portfolio's transaction list. Positions are recomputed in full on every
// valuation request and are never persisted.
//
// Fully closed positions (net quantity of zero) are excluded from results.
type Position struct {
	AssetID       string  `json:"assetId"`
	Name          string  `json:"name"`
	NetQuantity   float64 `json:"netQuantity"`
	AverageCost   float64 `json:"averageCost"`
	CurrentPrice  float64 `json:"currentPrice"`
	CurrentValue  float64 `json:"currentValue"`
	UnrealizedPnL float64 `json:"unrealizedPnl"`
	ROIPct        float64 `json:"roiPct"`
	DayChangePct  float64 `json:"dayChangePct"`
}
