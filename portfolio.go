package spot

import (
	"fmt"
	"maps"
	"slices"
)

// Portfolio maps a symbol ID to its ledger. A missing symbol is an empty ledger.
//
// Changes never modify the receiver, they return an updated copy, so that a
// rejected change leaves nothing half written.
type Portfolio map[string]Ledger

// Ledger returns the ledger of a symbol.
func (p Portfolio) Ledger(symbol string) Ledger { return p[symbol] }

// Find returns the transaction with this id in the symbol's ledger.
func (p Portfolio) Find(symbol, id string) (Transaction, bool) {
	l := p[symbol]
	if i := l.Index(id); i >= 0 {
		return l[i], true
	}
	return Transaction{}, false
}

// with returns a copy of p where symbol's ledger is replaced by l.
func (p Portfolio) with(symbol string, l Ledger) Portfolio {
	next := maps.Clone(p)
	if next == nil {
		next = make(Portfolio)
	}
	next[symbol] = l
	return next
}

// Add appends a new transaction to the symbol's ledger.
func (p Portfolio) Add(symbol string, tx Transaction) (Portfolio, error) {
	if err := tx.Validate(); err != nil {
		return p, err
	}
	old := p[symbol]
	if old.Index(tx.ID) >= 0 {
		return p, fmt.Errorf("%w: duplicate id %q", ErrInvalidInput, tx.ID)
	}
	next := append(slices.Clone(old), tx)
	if err := checkChange(old, next); err != nil {
		return p, err
	}
	return p.with(symbol, next), nil
}

// Replace replaces the transaction with the same ID, keeping its position in
// the ledger.
func (p Portfolio) Replace(symbol string, tx Transaction) (Portfolio, error) {
	if err := tx.Validate(); err != nil {
		return p, err
	}
	old := p[symbol]
	i := old.Index(tx.ID)
	if i < 0 {
		return p, fmt.Errorf("%w: %q in %s", ErrNotFound, tx.ID, symbol)
	}
	next := slices.Clone(old)
	next[i] = tx
	if err := checkChange(old, next); err != nil {
		return p, err
	}
	return p.with(symbol, next), nil
}

// Delete removes the transaction with this id. Deleting a buy that later
// sells depend on is rejected.
func (p Portfolio) Delete(symbol, id string) (Portfolio, error) {
	old := p[symbol]
	i := old.Index(id)
	if i < 0 {
		return p, fmt.Errorf("%w: %q in %s", ErrNotFound, id, symbol)
	}
	next := slices.Delete(slices.Clone(old), i, i+1)
	if err := checkChange(old, next); err != nil {
		return p, err
	}
	return p.with(symbol, next), nil
}
