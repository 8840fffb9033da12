package spot

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/spot/date"
)

func TestNewTransaction(t *testing.T) {
	today := date.New(2024, time.May, 17)

	testCases := []struct {
		name    string
		draft   Draft
		want    Transaction
		wantErr bool
	}{
		{
			name:  "defaults",
			draft: Draft{Price: "100", Quantity: "0.5"},
			want:  Transaction{Date: today, Kind: Buy, Price: M(100), Quantity: Q(0.5)},
		},
		{
			name:  "explicit",
			draft: Draft{Date: "2024-1-2", Kind: "SELL", Price: " 65000.5 ", Quantity: "0.001"},
			want:  Transaction{Date: date.New(2024, time.January, 2), Kind: Sell, Price: M(65000.5), Quantity: Q(0.001)},
		},
		{name: "missing price", draft: Draft{Quantity: "1"}, wantErr: true},
		{name: "missing quantity", draft: Draft{Price: "1"}, wantErr: true},
		{name: "zero price", draft: Draft{Price: "0", Quantity: "1"}, wantErr: true},
		{name: "negative quantity", draft: Draft{Price: "1", Quantity: "-2"}, wantErr: true},
		{name: "not a number", draft: Draft{Price: "abc", Quantity: "1"}, wantErr: true},
		{name: "bad date", draft: Draft{Date: "yesterday", Price: "1", Quantity: "1"}, wantErr: true},
		{name: "bad kind", draft: Draft{Kind: "short", Price: "1", Quantity: "1"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewTransaction(tc.draft, today)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("NewTransaction() error = %v, want %v", err, ErrInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTransaction() unexpected error: %v", err)
			}
			if got.ID == "" {
				t.Errorf("NewTransaction() did not assign an ID")
			}
			tc.want.ID = got.ID
			if got.Date != tc.want.Date || got.Kind != tc.want.Kind || !got.Price.Equal(tc.want.Price) || !got.Quantity.Equal(tc.want.Quantity) {
				t.Errorf("NewTransaction() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewTransaction_UniqueIDs(t *testing.T) {
	d := Draft{Price: "1", Quantity: "1"}
	a, _ := NewTransaction(d, date.New(2024, time.May, 17))
	b, _ := NewTransaction(d, date.New(2024, time.May, 17))
	if a.ID == b.ID {
		t.Errorf("two transactions share the ID %q", a.ID)
	}
}

func TestDraft_Amend(t *testing.T) {
	orig := buy("2024-01-01", 1, 100)

	got, err := Draft{Quantity: "3"}.Amend(orig)
	if err != nil {
		t.Fatalf("Amend() unexpected error: %v", err)
	}
	if got.ID != orig.ID || got.Date != orig.Date || got.Kind != orig.Kind || !got.Price.Equal(orig.Price) {
		t.Errorf("Amend() changed unspecified fields: %v", got)
	}
	assertQuantity(t, "Quantity", got.Quantity, 3)

	if _, err := (Draft{Price: "-1", Quantity: "x"}).Amend(orig); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Amend() error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestLedger_Oversells(t *testing.T) {
	testCases := []struct {
		name   string
		ledger Ledger
		want   int
	}{
		{name: "empty", ledger: nil, want: 0},
		{name: "exact close", ledger: Ledger{buy("2024-01-01", 1, 10), sell("2024-01-02", 1, 10)}, want: 0},
		{name: "within dust", ledger: Ledger{buy("2024-01-01", 1, 10), sell("2024-01-02", 1.000000001, 10)}, want: 0},
		{name: "naked sell", ledger: Ledger{sell("2024-01-01", 1, 10)}, want: 1},
		{name: "sell before buy", ledger: Ledger{buy("2024-01-02", 1, 10), sell("2024-01-01", 1, 10)}, want: 1},
		{name: "too much", ledger: Ledger{buy("2024-01-01", 1, 10), sell("2024-01-02", 0.5, 10), sell("2024-01-03", 0.6, 10)}, want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.ledger.Oversells()
			if len(got) != tc.want {
				t.Errorf("Oversells() = %v, want %d", got, tc.want)
			}
			for _, o := range got {
				if !errors.Is(o, ErrOversell) {
					t.Errorf("Oversell %v is not %v", o, ErrOversell)
				}
			}
		})
	}
}
