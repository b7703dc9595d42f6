package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/testutil"
)

func TestPortfolioHandler_Portfolios(t *testing.T) {
	t.Run("lists portfolios", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, testutil.NewFakeProvider()))
		testutil.CreatePortfolio(t, db, "Main")

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
		w := httptest.NewRecorder()

		handler.Portfolios(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var portfolios []model.Portfolio
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&portfolios)

		if len(portfolios) != 1 || portfolios[0].Name != "Main" {
			t.Errorf("Expected one portfolio named Main, got %v", portfolios)
		}
	})
}

func TestPortfolioHandler_CreatePortfolio(t *testing.T) {
	t.Run("creates a portfolio from a valid body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, testutil.NewFakeProvider()))

		body := strings.NewReader(`{"name": "Growth", "description": "Tech heavy"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio", body)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Portfolio
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&created)

		if created.ID == "" || created.Name != "Growth" {
			t.Errorf("Unexpected created portfolio: %+v", created)
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, testutil.NewFakeProvider()))

		body := strings.NewReader(`{"description": "no name"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio", body)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, testutil.NewFakeProvider()))

		req := httptest.NewRequest(http.MethodPost, "/api/portfolio", strings.NewReader(`{not json`))
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestPortfolioHandler_PortfolioPositions(t *testing.T) {
	t.Run("returns the positions summary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		provider := testutil.NewFakeProvider().WithQuote("AAPL", 200, 0)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, provider))
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		testutil.Buy(t, db, portfolio.ID, "AAPL", 10, 100, testutil.Date(2024, time.January, 1))

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/"+portfolio.ID+"/positions",
			map[string]string{"uuid": portfolio.ID})
		w := httptest.NewRecorder()

		handler.PortfolioPositions(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var summary model.PortfolioSummary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&summary)

		if summary.TotalValue != 2000 {
			t.Errorf("Expected total value 2000, got %v", summary.TotalValue)
		}
	})

	t.Run("returns 404 for an unknown portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, testutil.NewFakeProvider()))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/"+id+"/positions",
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.PortfolioPositions(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestPortfolioHandler_PortfolioStatistics(t *testing.T) {
	t.Run("returns a snapshot even with no history", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, testutil.NewFakeProvider()))
		portfolio := testutil.CreatePortfolio(t, db, "Empty")

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/portfolio/"+portfolio.ID+"/statistics",
			map[string]string{"uuid": portfolio.ID})
		w := httptest.NewRecorder()

		handler.PortfolioStatistics(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var snap model.StatisticsSnapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&snap)

		if snap.ReturnPct != 0 {
			t.Errorf("Expected zero snapshot, got %+v", snap)
		}
	})
}
