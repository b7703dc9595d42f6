package validation_test

import (
	"testing"

	"github.com/sonex-on/beta1-portfolio/internal/api/request"
	"github.com/sonex-on/beta1-portfolio/internal/testutil"
	"github.com/sonex-on/beta1-portfolio/internal/validation"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "upper-cases and trims", input: " aapl ", want: "AAPL"},
		{name: "keeps exchange suffixes", input: "vusa.l", want: "VUSA.L"},
		{name: "keeps crypto pairs", input: "btc-usd", want: "BTC-USD"},
		{name: "strips stray characters", input: "AA PL!", want: "AAPL"},
		{name: "rejects empty", input: "   ", wantErr: true},
		{name: "rejects symbols with nothing valid", input: "!!!", wantErr: true},
		{name: "rejects over-long symbols", input: "ABCDEFGHIJKLMNOPQRSTU", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.NormalizeSymbol(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NormalizeSymbol(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeSymbol(%q) returned unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateCreateTransaction(t *testing.T) {
	valid := request.CreateTransactionRequest{
		PortfolioID: testutil.MakeID(),
		AssetID:     "AAPL",
		Date:        "2024-01-02",
		Type:        "buy",
		Quantity:    10,
		UnitPrice:   150,
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateCreateTransaction(valid); err != nil {
			t.Errorf("Expected valid request to pass, got %v", err)
		}
	})

	t.Run("rejects a bad portfolio ID", func(t *testing.T) {
		req := valid
		req.PortfolioID = "not-a-uuid"
		if err := validation.ValidateCreateTransaction(req); err == nil {
			t.Error("Expected error for invalid portfolio ID")
		}
	})

	fieldCases := []struct {
		name   string
		mutate func(*request.CreateTransactionRequest)
		field  string
	}{
		{"rejects zero quantity", func(r *request.CreateTransactionRequest) { r.Quantity = 0 }, "quantity"},
		{"rejects negative quantity", func(r *request.CreateTransactionRequest) { r.Quantity = -5 }, "quantity"},
		{"rejects zero unit price", func(r *request.CreateTransactionRequest) { r.UnitPrice = 0 }, "unitPrice"},
		{"rejects unknown type", func(r *request.CreateTransactionRequest) { r.Type = "transfer" }, "transactionType"},
		{"rejects missing date", func(r *request.CreateTransactionRequest) { r.Date = "" }, "date"},
		{"rejects malformed date", func(r *request.CreateTransactionRequest) { r.Date = "02/01/2024" }, "date"},
		{"rejects future date", func(r *request.CreateTransactionRequest) { r.Date = "2099-01-01" }, "date"},
		{"rejects invalid symbol", func(r *request.CreateTransactionRequest) { r.AssetID = "!!!" }, "assetId"},
	}

	for _, tt := range fieldCases {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validation.ValidateCreateTransaction(req)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var vErr *validation.Error
			if !asValidationError(err, &vErr) {
				t.Fatalf("Expected *validation.Error, got %T", err)
			}
			if _, ok := vErr.Fields[tt.field]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.field, vErr.Fields)
			}
		})
	}
}

func asValidationError(err error, target **validation.Error) bool {
	v, ok := err.(*validation.Error)
	if ok {
		*target = v
	}
	return ok
}

func TestValidateCreatePortfolio(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		err := validation.ValidateCreatePortfolio(request.CreatePortfolioRequest{Name: "Savings"})
		if err != nil {
			t.Errorf("Expected valid request to pass, got %v", err)
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		err := validation.ValidateCreatePortfolio(request.CreatePortfolioRequest{Name: "  "})
		if err == nil {
			t.Error("Expected error for missing name")
		}
	})
}
