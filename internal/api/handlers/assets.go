package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sonex-on/beta1-portfolio/internal/api/response"
	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/service"
)

// AssetHandler handles HTTP requests for asset catalog and quote endpoints.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// SearchAssets handles GET requests to search the asset catalog.
// An empty query returns the full catalog.
//
// Endpoint: GET /api/asset?q={query}
// Response: 200 OK with array of Asset
// Error: 500 Internal Server Error if the search fails
func (h *AssetHandler) SearchAssets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	assets, err := h.assetService.SearchAssets(query)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}

// GetQuote handles GET requests for the current quote of a symbol.
//
// Endpoint: GET /api/asset/{symbol}/quote
// Response: 200 OK with Quote
// Error: 400 Bad Request if the symbol is invalid
// Error: 404 Not Found if the provider has no quote for the symbol
// Error: 500 Internal Server Error if the lookup fails
func (h *AssetHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	quote, err := h.assetService.GetQuote(r.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidSymbol):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSymbol.Error(), err.Error())
		case errors.Is(err, apperrors.ErrQuoteNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrQuoteNotFound.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveQuote.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, quote)
}
