package marketdata

import (
	"context"
	"sync"
	"time"
)

// Cache memoizes Provider results behind freshness windows: quotes on the
// order of minutes, historical series on the order of an hour. A cache miss
// is served identically to a fresh fetch, and errors are never cached.
//
// History entries are keyed by symbol only; a cached series is reused for a
// request when it was fetched from the same or an earlier start date.
type Cache struct {
	provider   Provider
	quoteTTL   time.Duration
	historyTTL time.Duration
	now        func() time.Time

	mu        sync.Mutex
	quotes    map[string]cachedQuote
	histories map[string]cachedHistory
}

type cachedQuote struct {
	quote     Quote
	fetchedAt time.Time
}

type cachedHistory struct {
	since     time.Time
	closes    []Close
	fetchedAt time.Time
}

// NewCache wraps a provider with TTL-bounded memoization.
func NewCache(provider Provider, quoteTTL, historyTTL time.Duration) *Cache {
	return &Cache{
		provider:   provider,
		quoteTTL:   quoteTTL,
		historyTTL: historyTTL,
		now:        time.Now,
		quotes:     make(map[string]cachedQuote),
		histories:  make(map[string]cachedHistory),
	}
}

// CurrentQuote returns a cached quote when fresh, otherwise delegates to the
// underlying provider and stores the result.
func (c *Cache) CurrentQuote(ctx context.Context, symbol string) (Quote, error) {
	c.mu.Lock()
	entry, ok := c.quotes[symbol]
	c.mu.Unlock()

	if ok && c.now().Sub(entry.fetchedAt) < c.quoteTTL {
		return entry.quote, nil
	}

	quote, err := c.provider.CurrentQuote(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}

	c.mu.Lock()
	c.quotes[symbol] = cachedQuote{quote: quote, fetchedAt: c.now()}
	c.mu.Unlock()

	return quote, nil
}

// DailyCloses returns a cached series when fresh and covering the requested
// start date, otherwise delegates to the underlying provider.
func (c *Cache) DailyCloses(ctx context.Context, symbol string, since time.Time) ([]Close, error) {
	c.mu.Lock()
	entry, ok := c.histories[symbol]
	c.mu.Unlock()

	if ok && c.now().Sub(entry.fetchedAt) < c.historyTTL && !entry.since.After(since) {
		return trimBefore(entry.closes, since), nil
	}

	closes, err := c.provider.DailyCloses(ctx, symbol, since)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.histories[symbol] = cachedHistory{since: since, closes: closes, fetchedAt: c.now()}
	c.mu.Unlock()

	return closes, nil
}

// trimBefore drops closes earlier than the requested start date. The cached
// slice is never mutated.
func trimBefore(closes []Close, since time.Time) []Close {
	for i, cl := range closes {
		if !cl.Date.Before(since) {
			return closes[i:]
		}
	}
	return nil
}
