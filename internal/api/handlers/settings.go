package handlers

import (
	"net/http"

	"github.com/sonex-on/beta1-portfolio/internal/api/request"
	"github.com/sonex-on/beta1-portfolio/internal/api/response"
	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/service"
)

// SettingsHandler handles HTTP requests for application settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// ProviderTokenStatusResponse reports whether a provider token is configured.
// The token itself is never returned.
type ProviderTokenStatusResponse struct {
	Configured bool `json:"configured"`
}

// ProviderTokenStatus handles GET requests for the market data token status.
//
// Endpoint: GET /api/settings/marketdata
// Response: 200 OK with ProviderTokenStatusResponse
func (h *SettingsHandler) ProviderTokenStatus(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, ProviderTokenStatusResponse{
		Configured: h.settingsService.HasProviderToken(),
	})
}

// SetProviderToken handles PUT requests to store the market data provider
// token. The token is encrypted before it reaches the database.
//
// Endpoint: PUT /api/settings/marketdata
// Request Body: SetProviderTokenRequest (token)
// Response: 204 No Content
// Error: 400 Bad Request if the body is invalid or the token is empty
// Error: 500 Internal Server Error if storage fails
func (h *SettingsHandler) SetProviderToken(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetProviderTokenRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Token == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "token is required")
		return
	}

	if err := h.settingsService.SetProviderToken(r.Context(), req.Token); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToStoreProviderToken.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
