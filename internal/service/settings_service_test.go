package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/repository"
	"github.com/sonex-on/beta1-portfolio/internal/service"
	"github.com/sonex-on/beta1-portfolio/internal/testutil"
)

// testFernetKey is a base64-encoded 32-byte key, valid only for tests.
const testFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

func TestSettingsService_ProviderToken(t *testing.T) {
	t.Run("round-trips the token through encryption", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc, err := service.NewSettingsService(repository.NewSettingsRepository(db), testFernetKey)
		if err != nil {
			t.Fatalf("NewSettingsService() returned unexpected error: %v", err)
		}

		if err := svc.SetProviderToken(context.Background(), "secret-api-token"); err != nil {
			t.Fatalf("SetProviderToken() returned unexpected error: %v", err)
		}

		token, err := svc.GetProviderToken()
		if err != nil {
			t.Fatalf("GetProviderToken() returned unexpected error: %v", err)
		}
		if token != "secret-api-token" {
			t.Errorf("Expected round-tripped token, got %q", token)
		}
	})

	t.Run("never stores the plaintext token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc, err := service.NewSettingsService(repository.NewSettingsRepository(db), testFernetKey)
		if err != nil {
			t.Fatalf("NewSettingsService() returned unexpected error: %v", err)
		}

		if err := svc.SetProviderToken(context.Background(), "secret-api-token"); err != nil {
			t.Fatalf("SetProviderToken() returned unexpected error: %v", err)
		}

		var stored string
		if err := db.QueryRow(`SELECT value FROM setting`).Scan(&stored); err != nil {
			t.Fatalf("Failed to read stored setting: %v", err)
		}
		if stored == "secret-api-token" {
			t.Error("Token stored in plaintext")
		}
	})

	t.Run("missing token yields not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc, err := service.NewSettingsService(repository.NewSettingsRepository(db), testFernetKey)
		if err != nil {
			t.Fatalf("NewSettingsService() returned unexpected error: %v", err)
		}

		if _, err := svc.GetProviderToken(); !errors.Is(err, apperrors.ErrProviderTokenNotFound) {
			t.Errorf("Expected ErrProviderTokenNotFound, got %v", err)
		}
		if svc.HasProviderToken() {
			t.Error("Expected HasProviderToken to be false")
		}
	})

	t.Run("rejects a malformed key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		if _, err := service.NewSettingsService(repository.NewSettingsRepository(db), "not-a-key"); err == nil {
			t.Error("Expected error for malformed fernet key, got nil")
		}
	})
}
