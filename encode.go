package spot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodePortfolio reads a portfolio encoded as a JSON object mapping each
// symbol to its array of transactions.
//
// Empty input is an empty portfolio.
func DecodePortfolio(r io.Reader) (Portfolio, error) {
	p := make(Portfolio)
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return p, nil
		}
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}
	if p == nil {
		// the literal null
		p = make(Portfolio)
	}
	return p, nil
}

// EncodePortfolio writes the portfolio as a single JSON object.
func EncodePortfolio(w io.Writer, p Portfolio) error {
	out := make(map[string]Ledger, len(p))
	for symbol, l := range p {
		if l == nil {
			// an empty array, not null
			l = Ledger{}
		}
		out[symbol] = l
	}
	if err := json.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}
	return nil
}
