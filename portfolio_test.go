package spot

import (
	"errors"
	"testing"
)

func TestPortfolio_Add(t *testing.T) {
	var p Portfolio
	b := buy("2024-01-01", 2, 100)

	p1, err := p.Add("BTCUSDT", b)
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if len(p1.Ledger("BTCUSDT")) != 1 {
		t.Fatalf("Add() ledger = %v, want one transaction", p1.Ledger("BTCUSDT"))
	}
	if len(p.Ledger("BTCUSDT")) != 0 {
		t.Errorf("Add() modified the receiver")
	}

	if _, err := p1.Add("BTCUSDT", b); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Add() duplicate error = %v, want %v", err, ErrInvalidInput)
	}

	p2, err := p1.Add("BTCUSDT", sell("2024-01-02", 3, 100))
	if !errors.Is(err, ErrOversell) {
		t.Errorf("Add() oversell error = %v, want %v", err, ErrOversell)
	}
	if len(p2.Ledger("BTCUSDT")) != 1 {
		t.Errorf("rejected Add() changed the portfolio: %v", p2)
	}

	if _, err := p1.Add("ETHUSDT", Transaction{ID: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Add() invalid error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestPortfolio_Replace(t *testing.T) {
	b := buy("2024-01-01", 2, 100)
	s := sell("2024-01-02", 1, 150)
	p := Portfolio{"ETHUSDT": {b, s}}

	edited := b
	edited.Price = M(120)
	p1, err := p.Replace("ETHUSDT", edited)
	if err != nil {
		t.Fatalf("Replace() unexpected error: %v", err)
	}
	if got, _ := p1.Find("ETHUSDT", b.ID); !got.Price.Equal(M(120)) {
		t.Errorf("Replace() price = %s, want 120", got.Price.Decimal())
	}
	if got, _ := p.Find("ETHUSDT", b.ID); !got.Price.Equal(M(100)) {
		t.Errorf("Replace() modified the receiver")
	}
	if p1.Ledger("ETHUSDT")[0].ID != b.ID {
		t.Errorf("Replace() moved the transaction")
	}

	shrunk := b
	shrunk.Quantity = Q(0.5)
	if _, err := p.Replace("ETHUSDT", shrunk); !errors.Is(err, ErrOversell) {
		t.Errorf("Replace() oversell error = %v, want %v", err, ErrOversell)
	}

	missing := buy("2024-01-01", 1, 1)
	if _, err := p.Replace("ETHUSDT", missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace() missing error = %v, want %v", err, ErrNotFound)
	}
}

func TestPortfolio_Delete(t *testing.T) {
	b := buy("2024-01-01", 2, 100)
	s := sell("2024-01-02", 1, 150)
	p := Portfolio{"SOLUSDT": {b, s}}

	if _, err := p.Delete("SOLUSDT", b.ID); !errors.Is(err, ErrOversell) {
		t.Errorf("Delete() of a needed buy error = %v, want %v", err, ErrOversell)
	}

	p1, err := p.Delete("SOLUSDT", s.ID)
	if err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, ok := p1.Find("SOLUSDT", s.ID); ok {
		t.Errorf("Delete() kept the transaction")
	}
	if _, ok := p.Find("SOLUSDT", s.ID); !ok {
		t.Errorf("Delete() modified the receiver")
	}

	if _, err := p.Delete("SOLUSDT", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() missing error = %v, want %v", err, ErrNotFound)
	}
}

func TestPortfolio_LegacyOversell(t *testing.T) {
	// Loaded data may already oversell, it must not block other changes.
	p := Portfolio{"ADAUSDT": {sell("2024-01-01", 5, 1)}}
	if _, err := p.Add("ADAUSDT", buy("2024-02-01", 1, 1)); err != nil {
		t.Errorf("Add() error = %v, want none", err)
	}
}
