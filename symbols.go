package spot

import "strings"

// Symbol is an entry of the symbol catalog.
type Symbol struct {
	ID     string // ID is the key of the symbol's ledger in the portfolio, and the quote API symbol.
	Alias  string // Alias is the display name.
	HasAPI bool   // HasAPI is true when a live quote can be fetched.
}

// Catalog is the ordered, static list of supported symbols.
type Catalog []Symbol

// DefaultCatalog is the catalog of supported symbols.
var DefaultCatalog = Catalog{
	{ID: "BTCUSDT", Alias: "BTC", HasAPI: true},
	{ID: "ETHUSDT", Alias: "ETH", HasAPI: true},
	{ID: "SOLUSDT", Alias: "SOL", HasAPI: true},
	{ID: "BNBUSDT", Alias: "BNB", HasAPI: true},
	{ID: "ADAUSDT", Alias: "ADA", HasAPI: true},
	{ID: "DOGEUSDT", Alias: "DOGE", HasAPI: true},
	{ID: "TSLA", Alias: "TSLA", HasAPI: false},
	{ID: "NVDA", Alias: "NVDA", HasAPI: false},
	{ID: "AAPLE", Alias: "AAPL", HasAPI: false},
}

// Default returns the first symbol of the catalog.
func (c Catalog) Default() Symbol {
	if len(c) == 0 {
		return Symbol{}
	}
	return c[0]
}

// Lookup finds a symbol by ID first, then by alias. The match is case insensitive.
func (c Catalog) Lookup(name string) (Symbol, bool) {
	for _, s := range c {
		if strings.EqualFold(s.ID, name) {
			return s, true
		}
	}
	for _, s := range c {
		if strings.EqualFold(s.Alias, name) {
			return s, true
		}
	}
	return Symbol{}, false
}
