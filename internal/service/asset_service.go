package service

import (
	"context"

	"github.com/sonex-on/beta1-portfolio/internal/marketdata"
	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/repository"
	"github.com/sonex-on/beta1-portfolio/internal/validation"
)

// AssetService handles asset catalog lookups and live quote retrieval.
type AssetService struct {
	assetRepo *repository.AssetRepository
	quotes    marketdata.Provider
}

// NewAssetService creates a new AssetService.
func NewAssetService(assetRepo *repository.AssetRepository, quotes marketdata.Provider) *AssetService {
	return &AssetService{assetRepo: assetRepo, quotes: quotes}
}

// SearchAssets finds catalog assets whose symbol or name matches the query.
func (s *AssetService) SearchAssets(query string) ([]model.Asset, error) {
	return s.assetRepo.SearchAssets(query)
}

// GetQuote fetches the current quote for a symbol after normalizing it.
func (s *AssetService) GetQuote(ctx context.Context, symbol string) (marketdata.Quote, error) {
	normalized, err := validation.NormalizeSymbol(symbol)
	if err != nil {
		return marketdata.Quote{}, err
	}
	return s.quotes.CurrentQuote(ctx, normalized)
}
