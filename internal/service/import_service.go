package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sonex-on/beta1-portfolio/internal/api/request"
	"github.com/sonex-on/beta1-portfolio/internal/apperrors"
	"github.com/sonex-on/beta1-portfolio/internal/model"
	"github.com/sonex-on/beta1-portfolio/internal/validation"
)

// importHeaders is the required CSV header row for transaction imports.
var importHeaders = []string{"symbol", "date", "type", "quantity", "unit_price"}

// brokerSymbolAliases maps broker-specific ticker spellings (XTB CFD/ETF
// names) to the provider's symbols. Unknown symbols pass through unchanged.
var brokerSymbolAliases = map[string]string{
	"SP500ETF":  "SPY",
	"SP500":     "SPY",
	"NASDAQETF": "QQQ",
	"NASDAQ100": "QQQ",
	"BITCOIN":   "BTC-USD",
	"ETHEREUM":  "ETH-USD",
	"VUSA.UK":   "VUSA.L",
	"IUSA.UK":   "IUSA.L",
	"CSPX.UK":   "CSPX.L",
	"EQQQ.UK":   "EQQQ.L",
}

// importTypeAliases normalizes transaction type spellings found in broker
// exports, including the Polish labels XTB uses.
var importTypeAliases = map[string]string{
	"buy": model.TransactionBuy, "kupno": model.TransactionBuy,
	"sell": model.TransactionSell, "sprzedaz": model.TransactionSell, "sprzedaż": model.TransactionSell,
}

// ImportResult summarizes a CSV import: how many rows were stored and which
// were skipped, with a reason per skipped row.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportCSV reads transactions for one portfolio from CSV data with the
// header `symbol,date,type,quantity,unit_price`. Rows are validated and
// stored through the same path as manually created transactions, so the
// over-sell guard applies row by row. Invalid rows are skipped and reported,
// not fatal; a malformed header is.
func (s *TransactionService) ImportCSV(ctx context.Context, portfolioID string, r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidCSVHeaders, err)
	}
	if err := validateImportHeader(header); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		req, err := parseImportRecord(portfolioID, record)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if err := validation.ValidateCreateTransaction(req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if _, err := s.CreateTransaction(ctx, req); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func validateImportHeader(header []string) error {
	if len(header) != len(importHeaders) {
		return fmt.Errorf("%w: expected %v", apperrors.ErrInvalidCSVHeaders, importHeaders)
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), importHeaders[i]) {
			return fmt.Errorf("%w: expected %v", apperrors.ErrInvalidCSVHeaders, importHeaders)
		}
	}
	return nil
}

func parseImportRecord(portfolioID string, record []string) (request.CreateTransactionRequest, error) {
	if len(record) != len(importHeaders) {
		return request.CreateTransactionRequest{}, fmt.Errorf("expected %d fields, got %d", len(importHeaders), len(record))
	}

	symbol := strings.TrimSpace(record[0])
	if alias, ok := brokerSymbolAliases[strings.ToUpper(symbol)]; ok {
		symbol = alias
	}

	txType, ok := importTypeAliases[strings.ToLower(strings.TrimSpace(record[2]))]
	if !ok {
		return request.CreateTransactionRequest{}, fmt.Errorf("unknown transaction type %q", record[2])
	}

	quantity, err := parseImportNumber(record[3])
	if err != nil {
		return request.CreateTransactionRequest{}, fmt.Errorf("invalid quantity: %v", err)
	}
	unitPrice, err := parseImportNumber(record[4])
	if err != nil {
		return request.CreateTransactionRequest{}, fmt.Errorf("invalid unit_price: %v", err)
	}

	return request.CreateTransactionRequest{
		PortfolioID: portfolioID,
		AssetID:     symbol,
		Date:        strings.TrimSpace(record[1]),
		Type:        txType,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

// parseImportNumber accepts both decimal-point and European decimal-comma
// formats (1.234,56 as well as 1234.56).
func parseImportNumber(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	return strconv.ParseFloat(cleaned, 64)
}
