package spot

import (
	"fmt"
	"testing"

	"github.com/etnz/spot/date"
)

// buy is a helper for tests to create a buy transaction from consts.
func buy(on string, qty, price float64) Transaction {
	return trade(Buy, on, qty, price)
}

// sell is a helper for tests to create a sell transaction from consts.
func sell(on string, qty, price float64) Transaction {
	return trade(Sell, on, qty, price)
}

var seq int

func trade(k Kind, on string, qty, price float64) Transaction {
	seq++
	return Transaction{
		ID:       fmt.Sprintf("tx%d", seq),
		Date:     date.MustParse(on),
		Kind:     k,
		Price:    M(price),
		Quantity: Q(qty),
	}
}

func assertMoney(t *testing.T, name string, got Money, want float64) {
	t.Helper()
	if !got.Equal(M(want)) {
		t.Errorf("%s = %s, want %v", name, got.Decimal(), want)
	}
}

func assertQuantity(t *testing.T, name string, got Quantity, want float64) {
	t.Helper()
	if !got.Equal(Q(want)) {
		t.Errorf("%s = %s, want %v", name, got, want)
	}
}
