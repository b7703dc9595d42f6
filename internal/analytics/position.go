package analytics

import (
	"context"

	"github.com/sonex-on/beta1-portfolio/internal/marketdata"
	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// QuoteSource is the live-quote lookup the aggregator needs from the
// market-data collaborator.
type QuoteSource interface {
	CurrentQuote(ctx context.Context, symbol string) (marketdata.Quote, error)
}

// PositionAggregator nets a flat transaction list into current open positions
// with a weighted-average cost basis, valued against live quotes.
type PositionAggregator struct {
	quotes QuoteSource
}

// NewPositionAggregator creates an aggregator backed by the given quote source.
func NewPositionAggregator(quotes QuoteSource) *PositionAggregator {
	return &PositionAggregator{quotes: quotes}
}

// Aggregate computes the open positions for a transaction list.
//
// Per asset, transactions are replayed in ascending date order (ties by
// insertion order) through the weighted-average-cost reduction. Assets whose
// final net quantity is zero or less are dropped: closed positions disappear
// from the summary.
//
// Valuation degrades rather than fails: when the live quote cannot be
// resolved, the current price falls back to the average cost (zero
// unrealized P&L) and the day change to 0. Aggregate never returns an error;
// an empty transaction list yields an empty position list.
func (a *PositionAggregator) Aggregate(ctx context.Context, transactions []model.Transaction) []model.Position {
	order, groups := groupByAsset(transactions)

	positions := []model.Position{}
	for _, assetID := range order {
		var h holding
		for _, t := range sortByDate(groups[assetID]) {
			h.apply(t)
		}
		if h.quantity <= 0 {
			continue
		}

		avgCost := h.averageCost()

		currentPrice := avgCost
		dayChange := 0.0
		name := assetID
		if a.quotes != nil {
			if quote, err := a.quotes.CurrentQuote(ctx, assetID); err == nil && quote.Price > 0 {
				currentPrice = quote.Price
				dayChange = quote.DayChangePct
				if quote.Name != "" {
					name = quote.Name
				}
			}
		}

		value := h.quantity * currentPrice

		roi := 0.0
		if avgCost > 0 {
			roi = (currentPrice - avgCost) / avgCost * 100
		}

		positions = append(positions, model.Position{
			AssetID:       assetID,
			Name:          name,
			NetQuantity:   h.quantity,
			AverageCost:   avgCost,
			CurrentPrice:  currentPrice,
			CurrentValue:  value,
			UnrealizedPnL: value - h.cost,
			ROIPct:        roi,
			DayChangePct:  dayChange,
		})
	}

	return positions
}
