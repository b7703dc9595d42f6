package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAssetNotFound indicates that a symbol lookup against the catalog returned no results.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrQuoteNotFound indicates the market-data provider returned no quote for a symbol.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrPriceHistoryNotFound indicates the market-data provider returned no
	// daily closes for a symbol.
	ErrPriceHistoryNotFound = errors.New("price history not found")

	// ErrProviderTokenNotFound indicates no market-data provider token has been stored.
	ErrProviderTokenNotFound = errors.New("provider token not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInsufficientQuantity indicates that a sell transaction cannot be
	// recorded because the portfolio does not hold enough of the asset.
	// Over-selling is rejected here, at the boundary; the valuation engine
	// itself only clamps.
	ErrInsufficientQuantity = errors.New("insufficient quantity for sale")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid non-positive value.
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrInvalidSymbol indicates a symbol failed validation.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	// Portfolio operation errors
	ErrFailedToRetrievePortfolios   = errors.New("failed to retrieve portfolios")
	ErrFailedToRetrievePortfolio    = errors.New("failed to retrieve portfolio")
	ErrFailedToGetPortfolioSummary  = errors.New("failed to get portfolio summary")
	ErrFailedToGetPortfolioHistory  = errors.New("failed to get portfolio history")
	ErrFailedToComputeStatistics    = errors.New("failed to compute statistics")
	ErrFailedToCreatePortfolio      = errors.New("failed to create portfolio")
	ErrFailedToDeletePortfolio      = errors.New("failed to delete portfolio")

	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToImportTransactions   = errors.New("failed to import transactions")
	ErrInvalidCSVHeaders            = errors.New("invalid CSV headers")

	// Asset operation errors
	ErrFailedToRetrieveAssets = errors.New("failed to retrieve assets")
	ErrFailedToRetrieveQuote  = errors.New("failed to retrieve quote")

	// Settings operation errors
	ErrFailedToStoreProviderToken    = errors.New("failed to store provider token")
	ErrFailedToRetrieveProviderToken = errors.New("failed to retrieve provider token")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
