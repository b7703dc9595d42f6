package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/marketdata"
)

// FakeProvider is a configurable in-memory implementation of
// marketdata.Provider. It returns predefined quotes and close histories
// instead of calling the real chart API, and counts calls so cache behavior
// can be asserted.
type FakeProvider struct {
	mu sync.Mutex

	// Quotes maps symbol to the quote to return.
	Quotes map[string]marketdata.Quote
	// Closes maps symbol to the full close history to return.
	Closes map[string][]marketdata.Close
	// Errors maps symbol to an error returned for both quote and history
	// lookups of that symbol.
	Errors map[string]error

	// QuoteCalls and HistoryCalls count provider round-trips per symbol.
	QuoteCalls   map[string]int
	HistoryCalls map[string]int
}

// NewFakeProvider creates an empty FakeProvider. Symbols without configured
// data return the zero quote / nil history with no error.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Quotes:       map[string]marketdata.Quote{},
		Closes:       map[string][]marketdata.Close{},
		Errors:       map[string]error{},
		QuoteCalls:   map[string]int{},
		HistoryCalls: map[string]int{},
	}
}

// WithQuote configures the quote returned for a symbol.
func (f *FakeProvider) WithQuote(symbol string, price, dayChangePct float64) *FakeProvider {
	f.Quotes[symbol] = marketdata.Quote{
		Symbol:       symbol,
		Name:         symbol + " Inc.",
		Price:        price,
		DayChangePct: dayChangePct,
	}
	return f
}

// WithCloses configures the daily close history for a symbol.
func (f *FakeProvider) WithCloses(symbol string, closes []marketdata.Close) *FakeProvider {
	f.Closes[symbol] = closes
	return f
}

// WithError configures both lookups for a symbol to fail.
func (f *FakeProvider) WithError(symbol string, err error) *FakeProvider {
	f.Errors[symbol] = err
	return f
}

// CurrentQuote returns the configured quote for the symbol.
func (f *FakeProvider) CurrentQuote(_ context.Context, symbol string) (marketdata.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.QuoteCalls[symbol]++
	if err := f.Errors[symbol]; err != nil {
		return marketdata.Quote{}, err
	}
	return f.Quotes[symbol], nil
}

// DailyCloses returns the configured history for the symbol, trimmed to
// closes on or after since.
func (f *FakeProvider) DailyCloses(_ context.Context, symbol string, since time.Time) ([]marketdata.Close, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.HistoryCalls[symbol]++
	if err := f.Errors[symbol]; err != nil {
		return nil, err
	}

	var out []marketdata.Close
	for _, c := range f.Closes[symbol] {
		if !c.Date.Before(since) {
			out = append(out, c)
		}
	}
	return out, nil
}

// DailyCloseRange builds a contiguous run of daily closes starting at start,
// one per day, with prices generated by the step function.
func DailyCloseRange(start time.Time, days int, price func(i int) float64) []marketdata.Close {
	closes := make([]marketdata.Close, 0, days)
	for i := 0; i < days; i++ {
		closes = append(closes, marketdata.Close{
			Date:  start.AddDate(0, 0, i),
			Price: price(i),
		})
	}
	return closes
}
