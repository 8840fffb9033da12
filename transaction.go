package spot

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/spot/date"
)

// Kind is the direction of a trade.
type Kind string

const (
	Buy  Kind = "buy"
	Sell Kind = "sell"
)

// ParseKind parses "buy" or "sell", case insensitive.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Buy, Sell:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q, want %q or %q", s, Buy, Sell)
	}
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Transaction is a single trade. It is immutable once recorded, an edit
// replaces it wholesale under the same ID.
type Transaction struct {
	ID       string    `json:"id"`   // ID is opaque and stable for the lifetime of the record.
	Date     date.Date `json:"date"` // Date orders the ledger, it has no time of day.
	Kind     Kind      `json:"type"`
	Price    Money     `json:"price"` // Price is the unit price at execution.
	Quantity Quantity  `json:"qty"`
}

// Volume returns the total value exchanged, price times quantity.
func (t Transaction) Volume() Money { return t.Price.Mul(t.Quantity) }

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s @ %s", t.Date, t.Kind, t.Quantity, t.Price.Decimal())
}

// Ledger is the set of all transactions of one symbol. Its storage order is
// the insertion order, which breaks ties between trades of the same day.
type Ledger []Transaction

// Sorted returns a copy of the ledger sorted by date. The sort is stable:
// transactions on the same day keep their relative order.
func (l Ledger) Sorted() Ledger {
	sorted := slices.Clone(l)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return sorted
}

// Index returns the position of the transaction with this id, or -1.
func (l Ledger) Index(id string) int {
	return slices.IndexFunc(l, func(t Transaction) bool { return t.ID == id })
}
