package model

// Asset represents an entry in the asset catalog: a tradable symbol with a
// human-readable name. The catalog is seeded by migration and used for
// symbol search and as a display-name fallback when the quote provider
// returns none.
type Asset struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
