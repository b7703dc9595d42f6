package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// GetPortfolios retrieves portfolios from the database based on filter criteria.
// Returns an empty slice if no portfolios match the filter criteria.
func (s *PortfolioRepository) GetPortfolios(filter model.PortfolioFilter) ([]model.Portfolio, error) {
	query := `
		SELECT id, name, description, is_archived
		FROM portfolio
		WHERE 1=1
	`
	var args []any

	if !filter.IncludeArchived {
		query += " AND is_archived = ?"
		args = append(args, 0)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio table: %w", err)
	}
	defer rows.Close()

	portfolios := []model.Portfolio{}

	for rows.Next() {
		var p model.Portfolio

		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.IsArchived,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio table results: %w", err)
		}

		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio table: %w", err)
	}

	return portfolios, nil
}

// GetPortfolioOnID retrieves a single portfolio by its ID.
// Returns apperrors.ErrPortfolioNotFound when no row matches.
func (s *PortfolioRepository) GetPortfolioOnID(portfolioID string) (model.Portfolio, error) {
	query := `
		SELECT id, name, description, is_archived
		FROM portfolio
		WHERE id = ?
	`

	var p model.Portfolio
	err := s.db.QueryRow(query, portfolioID).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.IsArchived,
	)
	if err == sql.ErrNoRows {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to scan portfolio table results: %w", err)
	}

	return p, nil
}

// InsertPortfolio stores a new portfolio.
func (s *PortfolioRepository) InsertPortfolio(ctx context.Context, p *model.Portfolio) error {
	query := `
		INSERT INTO portfolio (id, name, description, is_archived)
		VALUES (?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.IsArchived); err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}
	return nil
}

// SetArchived flips the archive flag on a portfolio.
// Returns apperrors.ErrPortfolioNotFound when no row matches.
func (s *PortfolioRepository) SetArchived(ctx context.Context, portfolioID string, archived bool) error {
	result, err := s.db.ExecContext(ctx, `UPDATE portfolio SET is_archived = ? WHERE id = ?`, archived, portfolioID)
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}
	return nil
}

// DeletePortfolio removes a portfolio; its transactions cascade.
// Returns apperrors.ErrPortfolioNotFound when no row matches.
func (s *PortfolioRepository) DeletePortfolio(ctx context.Context, portfolioID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM portfolio WHERE id = ?`, portfolioID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}
	return nil
}
