package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
)

// SettingsRepository provides data access methods for the setting key/value table.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting returns the stored value for a key.
// Returns apperrors.ErrProviderTokenNotFound when the key is absent.
func (s *SettingsRepository) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM setting WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrProviderTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting table: %w", err)
	}
	return value, nil
}

// SetSetting stores or replaces the value for a key.
func (s *SettingsRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO setting (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}
