package analytics

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sonex-on/beta1-portfolio/internal/marketdata"
	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// PriceSource is the historical-price lookup the series builder needs from
// the market-data collaborator.
type PriceSource interface {
	DailyCloses(ctx context.Context, symbol string, since time.Time) ([]marketdata.Close, error)
}

// SeriesBuilder reconstructs the daily portfolio value and cumulative
// invested capital series from a transaction list and per-asset price
// histories.
type SeriesBuilder struct {
	prices PriceSource

	// fetchLimit bounds concurrent history fetches.
	fetchLimit int
}

// NewSeriesBuilder creates a builder backed by the given price source.
func NewSeriesBuilder(prices PriceSource) *SeriesBuilder {
	return &SeriesBuilder{prices: prices, fetchLimit: 4}
}

// Build reconstructs the aligned (value, capital) daily series.
//
// The calendar is the union of all per-asset price-history dates from the
// earliest transaction date onward. Gaps in any one asset's history are
// filled by last-known-value carry-forward, and by the nearest following
// value at the start when an asset's history begins after the global start.
//
// Holdings are replayed in a single forward pass: the running net quantity
// and cost basis per asset advance one calendar day at a time, applying that
// day's transactions through the weighted-average-cost reduction. The state
// at date D is therefore identical to replaying every transaction dated on
// or before D from zero.
//
// Assets whose price history is empty or unavailable contribute nothing to
// either series. If no asset has data, both series are empty.
func (b *SeriesBuilder) Build(ctx context.Context, transactions []model.Transaction) (model.Series, model.Series) {
	if len(transactions) == 0 {
		return model.Series{}, model.Series{}
	}

	order, groups := groupByAsset(transactions)

	start := transactions[0].Date
	for _, t := range transactions {
		if t.Date.Before(start) {
			start = t.Date
		}
	}

	histories := b.fetchHistories(ctx, order, start)
	if len(histories) == 0 {
		return model.Series{}, model.Series{}
	}

	calendar := unifiedCalendar(histories)
	aligned := alignHistories(histories, calendar)

	// Per-asset replay state: sorted transactions plus a cursor into them.
	type replay struct {
		pending []model.Transaction
		next    int
		holding holding
	}
	replays := make(map[string]*replay, len(histories))
	held := make([]string, 0, len(histories))
	for _, assetID := range order {
		if _, ok := aligned[assetID]; !ok {
			continue
		}
		replays[assetID] = &replay{pending: sortByDate(groups[assetID])}
		held = append(held, assetID)
	}

	value := make(model.Series, len(calendar))
	capital := make(model.Series, len(calendar))
	for i, date := range calendar {
		var dayValue, dayCapital float64
		for _, assetID := range held {
			r := replays[assetID]
			for r.next < len(r.pending) && !r.pending[r.next].Date.After(date) {
				r.holding.apply(r.pending[r.next])
				r.next++
			}
			if r.holding.quantity > 0 {
				dayValue += r.holding.quantity * aligned[assetID][i]
			}
			if r.holding.cost > 0 {
				dayCapital += r.holding.cost
			}
		}
		value[i] = model.SeriesPoint{Date: date, Value: dayValue}
		capital[i] = model.SeriesPoint{Date: date, Value: dayCapital}
	}

	return value, capital
}

// fetchHistories retrieves daily closes for every asset concurrently. Assets
// that fail or return no data are dropped; this is degradation, not an error.
func (b *SeriesBuilder) fetchHistories(ctx context.Context, assetIDs []string, since time.Time) map[string][]marketdata.Close {
	histories := make(map[string][]marketdata.Close, len(assetIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.fetchLimit)
	for _, assetID := range assetIDs {
		assetID := assetID
		g.Go(func() error {
			closes, err := b.prices.DailyCloses(gctx, assetID, since)
			if err != nil || len(closes) == 0 {
				return nil
			}
			mu.Lock()
			histories[assetID] = closes
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return histories
}

// unifiedCalendar returns the sorted union of all history dates.
func unifiedCalendar(histories map[string][]marketdata.Close) []time.Time {
	seen := make(map[time.Time]bool)
	calendar := []time.Time{}
	for _, closes := range histories {
		for _, cl := range closes {
			if !seen[cl.Date] {
				seen[cl.Date] = true
				calendar = append(calendar, cl.Date)
			}
		}
	}
	sort.Slice(calendar, func(i, j int) bool { return calendar[i].Before(calendar[j]) })
	return calendar
}

// alignHistories maps each asset's closes onto the unified calendar,
// forward-filling interior gaps and backward-filling the leading ones.
func alignHistories(histories map[string][]marketdata.Close, calendar []time.Time) map[string][]float64 {
	aligned := make(map[string][]float64, len(histories))
	for assetID, closes := range histories {
		byDate := make(map[time.Time]float64, len(closes))
		for _, cl := range closes {
			byDate[cl.Date] = cl.Price
		}

		prices := make([]float64, len(calendar))
		last := 0.0
		firstKnown := -1
		for i, date := range calendar {
			if p, ok := byDate[date]; ok {
				last = p
				if firstKnown < 0 {
					firstKnown = i
				}
			}
			prices[i] = last
		}
		// Backward-fill the stretch before the asset's own history begins.
		if firstKnown > 0 {
			for i := 0; i < firstKnown; i++ {
				prices[i] = prices[firstKnown]
			}
		}
		aligned[assetID] = prices
	}
	return aligned
}
