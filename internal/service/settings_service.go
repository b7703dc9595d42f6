package service

import (
	"context"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/repository"
)

const providerTokenKey = "market_data_provider_token"

// SettingsService stores application settings. Secrets such as the market
// data provider token are encrypted with a fernet key before they reach the
// database; reads decrypt transparently.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	fernetKey    *fernet.Key
}

// NewSettingsService creates a new SettingsService. The key must be a
// base64-encoded 32-byte fernet key.
func NewSettingsService(settingsRepo *repository.SettingsRepository, fernetKey string) (*SettingsService, error) {
	key, err := fernet.DecodeKey(fernetKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode settings encryption key: %w", err)
	}
	return &SettingsService{settingsRepo: settingsRepo, fernetKey: key}, nil
}

// SetProviderToken encrypts and stores the market data provider token.
func (s *SettingsService) SetProviderToken(ctx context.Context, token string) error {
	encrypted, err := fernet.EncryptAndSign([]byte(token), s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt provider token: %w", err)
	}
	return s.settingsRepo.SetSetting(ctx, providerTokenKey, string(encrypted))
}

// GetProviderToken retrieves and decrypts the stored provider token.
func (s *SettingsService) GetProviderToken() (string, error) {
	encrypted, err := s.settingsRepo.GetSetting(providerTokenKey)
	if err != nil {
		return "", err
	}
	token := fernet.VerifyAndDecrypt([]byte(encrypted), 0, []*fernet.Key{s.fernetKey})
	if token == nil {
		return "", apperrors.ErrProviderTokenNotFound
	}
	return string(token), nil
}

// HasProviderToken reports whether a provider token is stored, without
// exposing the secret itself.
func (s *SettingsService) HasProviderToken() bool {
	token, err := s.GetProviderToken()
	return err == nil && token != ""
}
