package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/service"
	"github.com/sonex-on/beta1-portfolio/internal/testutil"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	createBody := func(portfolioID, txType string, qty float64) *strings.Reader {
		return strings.NewReader(fmt.Sprintf(
			`{"portfolioId": %q, "assetId": "AAPL", "date": "2024-01-02", "type": %q, "quantity": %g, "unitPrice": 150}`,
			portfolioID, txType, qty))
	}

	t.Run("creates a transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		portfolio := testutil.CreatePortfolio(t, db, "Main")

		req := httptest.NewRequest(http.MethodPost, "/api/transaction", createBody(portfolio.ID, "buy", 10))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&created)

		if created.ID == "" || created.AssetID != "AAPL" {
			t.Errorf("Unexpected created transaction: %+v", created)
		}
	})

	t.Run("rejects an over-sell with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		testutil.Buy(t, db, portfolio.ID, "AAPL", 10, 100, testutil.Date(2024, time.January, 1))

		req := httptest.NewRequest(http.MethodPost, "/api/transaction", createBody(portfolio.ID, "sell", 25))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for over-sell, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects an unknown portfolio with 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/transaction", createBody(testutil.MakeID(), "buy", 1))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for unknown portfolio, got %d", w.Code)
		}
	})

	t.Run("rejects invalid field values with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		portfolio := testutil.CreatePortfolio(t, db, "Main")

		req := httptest.NewRequest(http.MethodPost, "/api/transaction", createBody(portfolio.ID, "buy", -1))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for negative quantity, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_ImportTransactions(t *testing.T) {
	t.Run("imports a CSV body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		portfolio := testutil.CreatePortfolio(t, db, "Main")

		csv := "symbol,date,type,quantity,unit_price\nAAPL,2024-01-02,buy,10,150\n"
		req := httptest.NewRequest(http.MethodPost, "/api/transaction/import?portfolioId="+portfolio.ID, strings.NewReader(csv))
		w := httptest.NewRecorder()

		handler.ImportTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var result service.ImportResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&result)

		if result.Imported != 1 {
			t.Errorf("Expected 1 imported, got %+v", result)
		}
	})

	t.Run("rejects a missing portfolio ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/transaction/import", strings.NewReader(""))
		w := httptest.NewRecorder()

		handler.ImportTransactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects bad headers with 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))
		portfolio := testutil.CreatePortfolio(t, db, "Main")

		req := httptest.NewRequest(http.MethodPost, "/api/transaction/import?portfolioId="+portfolio.ID,
			strings.NewReader("a,b,c\n"))
		w := httptest.NewRecorder()

		handler.ImportTransactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for bad headers, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 404 for an unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/"+id,
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
