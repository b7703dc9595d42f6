package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// TransactionRepository provides data access methods for the
// portfolio_transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions retrieves all transactions for a portfolio, sorted by date
// ascending with insertion order (created_at, then id) breaking ties. The
// engine relies on this ordering for weighted-average-cost replay.
// Returns an empty slice for a portfolio without transactions.
func (s *TransactionRepository) GetTransactions(portfolioID string) ([]model.Transaction, error) {
	query := `
		SELECT id, portfolio_id, asset_id, type, quantity, unit_price, date, created_at
		FROM portfolio_transaction
		WHERE portfolio_id = ?
		ORDER BY date ASC, created_at ASC, id ASC
	`

	rows, err := s.db.Query(query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var dateStr, createdAtStr string
		var t model.Transaction

		err := rows.Scan(
			&t.ID,
			&t.PortfolioID,
			&t.AssetID,
			&t.Type,
			&t.Quantity,
			&t.UnitPrice,
			&dateStr,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_transaction table results: %w", err)
		}
		t.Date, err = ParseTime(dateStr)
		if err != nil || t.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			t.CreatedAt = t.Date
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound when no row matches.
func (s *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	query := `
		SELECT id, portfolio_id, asset_id, type, quantity, unit_price, date, created_at
		FROM portfolio_transaction
		WHERE id = ?
	`

	var t model.Transaction
	var dateStr, createdAtStr string
	err := s.db.QueryRow(query, transactionID).Scan(
		&t.ID,
		&t.PortfolioID,
		&t.AssetID,
		&t.Type,
		&t.Quantity,
		&t.UnitPrice,
		&dateStr,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan portfolio_transaction table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		t.CreatedAt = t.Date
	}

	return t, nil
}

// InsertTransaction stores a new transaction.
func (s *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO portfolio_transaction (id, portfolio_id, asset_id, type, quantity, unit_price, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.PortfolioID,
		t.AssetID,
		t.Type,
		t.Quantity,
		t.UnitPrice,
		t.Date.Format("2006-01-02"),
		t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction.
// Returns apperrors.ErrTransactionNotFound when no row matches.
func (s *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM portfolio_transaction WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// GetHeldSymbols returns the distinct asset IDs appearing in any transaction,
// across all portfolios. Used by the scheduler to pre-warm price caches.
func (s *TransactionRepository) GetHeldSymbols() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT asset_id FROM portfolio_transaction ORDER BY asset_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_transaction table: %w", err)
	}
	defer rows.Close()

	symbols := []string{}
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_transaction table results: %w", err)
		}
		symbols = append(symbols, symbol)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_transaction table: %w", err)
	}
	return symbols, nil
}

// GetOldestTransactionDate finds the date of the earliest transaction across
// all portfolios. Returns the zero time when there are no transactions.
func (s *TransactionRepository) GetOldestTransactionDate() time.Time {
	var oldestDateStr sql.NullString
	err := s.db.QueryRow(`SELECT MIN(date) FROM portfolio_transaction`).Scan(&oldestDateStr)
	if err != nil || !oldestDateStr.Valid {
		return time.Time{}
	}
	oldestDate, err := ParseTime(oldestDateStr.String)
	if err != nil {
		return time.Time{}
	}
	return oldestDate
}
