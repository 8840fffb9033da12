package spot

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the quote currency of every symbol of the catalog.
const Currency = money.USD

// Money represents a monetary value in [Currency].
//
// Values are kept exact, rounding only happens when formatting.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string.
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	return Money{value: v}, err
}

// currency returns the go-money currency used for formatting.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the amount formatted in the currency, e.g. "$1,234.56".
func (m Money) String() string {
	cur := currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString returns the formatted amount with an explicit "+" for positive values.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money         { return Money{value: m.value.Mul(q.value)} }
func (m Money) Div(q Quantity) Money         { return Money{value: m.value.Div(q.value)} }
func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) StringFixed(dp int32) string  { return m.value.StringFixed(dp) }

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
