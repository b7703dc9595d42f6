// Package scheduler runs the background jobs that keep the market data cache
// warm so interactive requests rarely pay the provider round-trip.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/sonex-on/beta1-portfolio/internal/marketdata"
	"github.com/sonex-on/beta1-portfolio/internal/repository"
)

const jobTimeout = 5 * time.Minute

// Scheduler owns the cron runner. Jobs are best effort: a failing symbol is
// logged and skipped, never escalated, so a provider outage cannot take the
// scheduler down.
type Scheduler struct {
	cron            *cron.Cron
	cache           *marketdata.Cache
	transactionRepo *repository.TransactionRepository
	logger          zerolog.Logger
}

// New creates a Scheduler wired to the shared market data cache.
func New(cache *marketdata.Cache, transactionRepo *repository.TransactionRepository, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		cache:           cache,
		transactionRepo: transactionRepo,
		logger:          logger.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the jobs and launches the cron runner.
// History pre-warm runs daily after most exchanges have published closes;
// quote refresh runs hourly.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 6 * * *", s.prewarmHistories); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 * * * *", s.refreshQuotes); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Msg("scheduler started")
	return nil
}

// Stop stops the cron runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("scheduler stopped")
}

func (s *Scheduler) prewarmHistories() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	symbols, err := s.transactionRepo.GetHeldSymbols()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list held symbols")
		return
	}
	since := s.transactionRepo.GetOldestTransactionDate()
	if since.IsZero() {
		return
	}

	warmed := 0
	for _, symbol := range symbols {
		if _, err := s.cache.DailyCloses(ctx, symbol, since); err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("history pre-warm failed")
			continue
		}
		warmed++
	}
	s.logger.Info().Int("symbols", len(symbols)).Int("warmed", warmed).Msg("history pre-warm done")
}

func (s *Scheduler) refreshQuotes() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	symbols, err := s.transactionRepo.GetHeldSymbols()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list held symbols")
		return
	}
	for _, symbol := range symbols {
		if _, err := s.cache.CurrentQuote(ctx, symbol); err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote refresh failed")
		}
	}
}
