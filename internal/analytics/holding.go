// Package analytics implements the portfolio valuation and performance
// engine: netting transactions into positions with a weighted-average cost
// basis, reconstructing daily value/capital series from price histories,
// deriving chart-ready series, and computing risk/return statistics.
//
// Everything here is a pure function of its inputs apart from market-data
// lookups, which are injected and degrade on failure rather than propagate.
package analytics

import (
	"sort"

	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// holding is the running weighted-average-cost state for one asset.
type holding struct {
	quantity float64
	cost     float64
}

// apply folds a single transaction into the holding.
//
// Buys add quantity*price to cost. Sells reduce cost at the current average
// cost per unit, capped at the held quantity: an over-sell that reaches this
// point is absorbed by clamping, never by going negative. Rejection of
// over-sells happens at the service boundary before transactions are stored.
func (h *holding) apply(t model.Transaction) {
	switch t.Type {
	case model.TransactionBuy:
		h.cost += t.Quantity * t.UnitPrice
		h.quantity += t.Quantity
	case model.TransactionSell:
		if h.quantity > 0 {
			avg := h.cost / h.quantity
			sold := t.Quantity
			if sold > h.quantity {
				sold = h.quantity
			}
			h.cost -= avg * sold
			h.quantity -= sold
		}
	}
}

// averageCost returns cost per unit, or 0 for an empty holding.
func (h *holding) averageCost() float64 {
	if h.quantity <= 0 {
		return 0
	}
	return h.cost / h.quantity
}

// sortByDate orders transactions by ascending date, ties broken by insertion
// order. The input slice is not modified.
func sortByDate(transactions []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// groupByAsset splits transactions per asset ID, preserving first-seen asset
// order so results are deterministic.
func groupByAsset(transactions []model.Transaction) ([]string, map[string][]model.Transaction) {
	order := []string{}
	groups := make(map[string][]model.Transaction)
	for _, t := range transactions {
		if _, seen := groups[t.AssetID]; !seen {
			order = append(order, t.AssetID)
		}
		groups[t.AssetID] = append(groups[t.AssetID], t)
	}
	return order, groups
}
