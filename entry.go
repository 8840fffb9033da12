package spot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/spot/date"
	"github.com/google/uuid"
)

var (
	// ErrInvalidInput is returned when a draft transaction cannot be accepted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOversell is returned when a change would sell more than is held.
	ErrOversell = errors.New("sell exceeds holdings")
	// ErrNotFound is returned when no transaction has the requested id.
	ErrNotFound = errors.New("transaction not found")
)

// Draft is a transaction as typed by the user, before validation.
//
// An empty field means "not provided".
type Draft struct {
	Date     string
	Kind     string
	Price    string
	Quantity string
}

// NewTransaction validates a draft and assigns it a fresh ID. An empty date
// defaults to today, an empty kind to buy.
func NewTransaction(d Draft, today date.Date) (Transaction, error) {
	base := Transaction{Date: today, Kind: Buy}
	tx, err := d.Amend(base)
	if strings.TrimSpace(d.Price) == "" {
		err = errors.Join(err, fmt.Errorf("%w: price is required", ErrInvalidInput))
	}
	if strings.TrimSpace(d.Quantity) == "" {
		err = errors.Join(err, fmt.Errorf("%w: quantity is required", ErrInvalidInput))
	}
	if err != nil {
		return Transaction{}, err
	}
	tx.ID = uuid.NewString()
	return tx, nil
}

// Amend returns a copy of tx with the fields provided by the draft replaced.
// The ID is kept. All field errors are reported at once.
func (d Draft) Amend(tx Transaction) (Transaction, error) {
	var errs []error
	if s := strings.TrimSpace(d.Date); s != "" {
		on, err := date.Parse(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidInput, err))
		}
		tx.Date = on
	}
	if d.Kind != "" {
		k, err := ParseKind(d.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidInput, err))
		}
		tx.Kind = k
	}
	if s := strings.TrimSpace(d.Price); s != "" {
		p, err := ParseMoney(s)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%w: price %q is not a number", ErrInvalidInput, s))
		case !p.IsPositive():
			errs = append(errs, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidInput, s))
		}
		tx.Price = p
	}
	if s := strings.TrimSpace(d.Quantity); s != "" {
		q, err := ParseQuantity(s)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%w: quantity %q is not a number", ErrInvalidInput, s))
		case !q.IsPositive():
			errs = append(errs, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidInput, s))
		}
		tx.Quantity = q
	}
	if len(errs) > 0 {
		return Transaction{}, errors.Join(errs...)
	}
	return tx, nil
}

// Validate checks the invariants of a stored transaction.
func (t Transaction) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, fmt.Errorf("%w: missing id", ErrInvalidInput))
	}
	if t.Date.IsZero() {
		errs = append(errs, fmt.Errorf("%w: missing date", ErrInvalidInput))
	}
	if t.Kind != Buy && t.Kind != Sell {
		errs = append(errs, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, t.Kind))
	}
	if !t.Price.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidInput, t.Price.Decimal()))
	}
	if !t.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidInput, t.Quantity))
	}
	return errors.Join(errs...)
}

// Oversell is a sell of more than the quantity held at that point of the ledger.
type Oversell struct {
	Transaction
	Held Quantity
}

func (o Oversell) Error() string {
	return fmt.Sprintf("%v: on %s selling %s while holding %s", ErrOversell, o.Date, o.Quantity, o.Held)
}

func (o Oversell) Unwrap() error { return ErrOversell }

// Oversells returns every sell of the ledger that exceeds the holdings at
// that point, in chronological order.
func (l Ledger) Oversells() []Oversell {
	var found []Oversell
	var held Quantity
	for _, tx := range l.Sorted() {
		switch tx.Kind {
		case Buy:
			held = held.Add(tx.Quantity)
		case Sell:
			if tx.Quantity.Sub(held).GreaterThan(dust) {
				found = append(found, Oversell{Transaction: tx, Held: held})
			}
			held = held.Sub(tx.Quantity)
			if held.LessThan(dust) {
				held = Quantity{}
			}
		}
	}
	return found
}

// checkChange rejects the next ledger when it has an oversell the old one did not
// have. Oversells already present in old do not block unrelated changes.
func checkChange(old, next Ledger) error {
	known := make(map[string]bool)
	for _, o := range old.Oversells() {
		known[o.ID] = true
	}
	for _, o := range next.Oversells() {
		if !known[o.ID] {
			return o
		}
	}
	return nil
}
