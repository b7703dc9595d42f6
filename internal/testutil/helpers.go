package testutil

import (
	"database/sql"
	"testing"

	"github.com/sonex-on/beta1-portfolio/internal/repository"
	"github.com/sonex-on/beta1-portfolio/internal/service"
)

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
		repository.NewPortfolioRepository(db),
		repository.NewAssetRepository(db),
	)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB, provider *FakeProvider) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		repository.NewPortfolioRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewAssetRepository(db),
		provider,
		provider,
		0.05,
	)
}

func NewTestAssetService(t *testing.T, db *sql.DB, provider *FakeProvider) *service.AssetService {
	t.Helper()

	return service.NewAssetService(repository.NewAssetRepository(db), provider)
}
