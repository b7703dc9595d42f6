package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/sonex-on/beta1-portfolio/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	"buy": true, "sell": true,
}

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - portfolioId: Must be a valid UUID
//   - assetId: Must be a normalizable ticker symbol
//   - date: Must be in YYYY-MM-DD format, not in the future
//   - type: Must be one of: buy, sell
//   - quantity: Must be positive
//   - unitPrice: Must be positive
//
// Over-sell prevention (selling more than is held) is not checked here: it
// requires the current holding and is enforced by the transaction service.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.PortfolioID); err != nil {
		return err
	}

	if _, err := NormalizeSymbol(req.AssetID); err != nil {
		errors["assetId"] = "assetId must be a valid ticker symbol"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if d, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	} else if d.After(time.Now()) {
		errors["date"] = "date cannot be in the future"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["transactionType"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["transactionType"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.UnitPrice <= 0.0 {
		errors["unitPrice"] = "unitPrice must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
