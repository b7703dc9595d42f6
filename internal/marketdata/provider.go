package marketdata

import (
	"context"
	"time"
)

// Quote is a live valuation snapshot for a single symbol.
type Quote struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DayChangePct float64 `json:"dayChangePct"`
}

// Close is a single daily closing price.
type Close struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Provider supplies live quotes and historical daily closes for symbols.
// Implementations may fail or return partial data; callers are expected to
// degrade rather than propagate those failures.
type Provider interface {
	// CurrentQuote returns the latest available price, display name and
	// day-over-day change for a symbol.
	CurrentQuote(ctx context.Context, symbol string) (Quote, error)

	// DailyCloses returns the chronologically ordered daily closing prices
	// for a symbol from the given date onward. An empty slice (no error)
	// means the provider has no data for the symbol.
	DailyCloses(ctx context.Context, symbol string, since time.Time) ([]Close, error)
}
