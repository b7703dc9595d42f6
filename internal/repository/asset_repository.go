package repository

import (
	"database/sql"
	"fmt"

	"github.com/sonex-on/beta1-portfolio/internal/model"
)

// AssetRepository provides data access methods for the asset catalog table.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// SearchAssets retrieves catalog entries matching a symbol or name fragment,
// case-insensitively. An empty query returns the full catalog.
func (s *AssetRepository) SearchAssets(query string) ([]model.Asset, error) {
	sqlQuery := `
		SELECT symbol, name, category
		FROM asset
	`
	var args []any
	if query != "" {
		sqlQuery += ` WHERE symbol LIKE ? OR name LIKE ?`
		pattern := "%" + query + "%"
		args = append(args, pattern, pattern)
	}
	sqlQuery += ` ORDER BY symbol ASC`

	rows, err := s.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset table: %w", err)
	}
	defer rows.Close()

	assets := []model.Asset{}
	for rows.Next() {
		var a model.Asset
		if err := rows.Scan(&a.Symbol, &a.Name, &a.Category); err != nil {
			return nil, fmt.Errorf("failed to scan asset table results: %w", err)
		}
		assets = append(assets, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset table: %w", err)
	}

	return assets, nil
}

// GetAssetName returns the catalog display name for a symbol, or "" when the
// symbol is not in the catalog.
func (s *AssetRepository) GetAssetName(symbol string) string {
	var name string
	err := s.db.QueryRow(`SELECT name FROM asset WHERE symbol = ?`, symbol).Scan(&name)
	if err != nil {
		return ""
	}
	return name
}
