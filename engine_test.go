package spot

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCompute_BuysOnly(t *testing.T) {
	ledger := Ledger{
		buy("2024-01-01", 1, 100),
		buy("2024-01-02", 3, 200),
		buy("2024-01-03", 0.5, 50),
		buy("2024-01-04", 2.5, 10),
	}
	stats := Compute(ledger, Unavailable)

	var cost, qty decimal.Decimal
	for i, p := range stats.Transactions {
		cost = cost.Add(ledger[i].Price.Decimal().Mul(ledger[i].Quantity.Decimal()))
		qty = qty.Add(ledger[i].Quantity.Decimal())
		want := M(cost.Div(qty))
		if !p.PostTradeAveragePrice.Equal(want) {
			t.Errorf("#%d average = %s, want %s", i, p.PostTradeAveragePrice.Decimal(), want.Decimal())
		}
		if p.HasPL {
			t.Errorf("#%d buy has a transaction P&L", i)
		}
	}
	assertMoney(t, "RealizedPL", stats.RealizedPL, 0)
	assertQuantity(t, "TotalQuantity", stats.TotalQuantity, 7)
}

func TestCompute(t *testing.T) {
	testCases := []struct {
		name        string
		ledger      Ledger
		wantAverage float64
		wantQty     float64
		wantCost    float64
		wantPL      float64
		// wantTxPL is the expected P&L of each processed transaction, nil for none.
		wantTxPL []*float64
	}{
		{
			name:        "partial sell",
			ledger:      Ledger{buy("2024-01-01", 10, 100), sell("2024-01-02", 4, 150)},
			wantAverage: 100,
			wantQty:     6,
			wantCost:    600,
			wantPL:      200,
			wantTxPL:    []*float64{nil, ptr(200)},
		},
		{
			name:        "full close",
			ledger:      Ledger{buy("2024-01-01", 5, 10), sell("2024-01-02", 5, 12)},
			wantAverage: 0,
			wantQty:     0,
			wantCost:    0,
			wantPL:      10,
			wantTxPL:    []*float64{nil, ptr(10)},
		},
		{
			name:        "sell without position",
			ledger:      Ledger{sell("2024-01-01", 3, 50)},
			wantAverage: 0,
			wantQty:     0,
			wantCost:    0,
			wantPL:      0,
			wantTxPL:    []*float64{nil},
		},
		{
			name:        "weighted average",
			ledger:      Ledger{buy("2024-01-01", 2, 100), buy("2024-01-02", 2, 200), sell("2024-01-03", 1, 300)},
			wantAverage: 150,
			wantQty:     3,
			wantCost:    450,
			wantPL:      150,
			wantTxPL:    []*float64{nil, nil, ptr(150)},
		},
		{
			name:        "sell at a loss",
			ledger:      Ledger{buy("2024-01-01", 4, 50), sell("2024-01-02", 1, 30)},
			wantAverage: 50,
			wantQty:     3,
			wantCost:    150,
			wantPL:      -20,
			wantTxPL:    []*float64{nil, ptr(-20)},
		},
		{
			name: "dust is flattened",
			ledger: Ledger{
				buy("2024-01-01", 1, 100),
				sell("2024-01-02", 0.999999995, 100),
			},
			wantAverage: 0,
			wantQty:     0,
			wantCost:    0,
			wantPL:      0,
			wantTxPL:    []*float64{nil, ptr(0)},
		},
		{
			name: "reopen after close",
			ledger: Ledger{
				buy("2024-01-01", 2, 10),
				sell("2024-01-02", 2, 20),
				buy("2024-01-03", 1, 40),
			},
			wantAverage: 40,
			wantQty:     1,
			wantCost:    40,
			wantPL:      20,
			wantTxPL:    []*float64{nil, ptr(20), nil},
		},
		{
			name:        "oversell realizes the full quantity and flattens",
			ledger:      Ledger{buy("2024-01-01", 2, 10), sell("2024-01-02", 3, 20)},
			wantAverage: 0,
			wantQty:     0,
			wantCost:    0,
			wantPL:      30,
			wantTxPL:    []*float64{nil, ptr(30)},
		},
		{
			name:        "unsorted input",
			ledger:      Ledger{sell("2024-02-01", 4, 150), buy("2024-01-01", 10, 100)},
			wantAverage: 100,
			wantQty:     6,
			wantCost:    600,
			wantPL:      200,
			wantTxPL:    []*float64{nil, ptr(200)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := Compute(tc.ledger, Unavailable)
			assertMoney(t, "AveragePrice", stats.AveragePrice, tc.wantAverage)
			assertQuantity(t, "TotalQuantity", stats.TotalQuantity, tc.wantQty)
			assertMoney(t, "CostBasis", stats.CostBasis, tc.wantCost)
			assertMoney(t, "RealizedPL", stats.RealizedPL, tc.wantPL)

			if len(stats.Transactions) != len(tc.wantTxPL) {
				t.Fatalf("got %d processed transactions, want %d", len(stats.Transactions), len(tc.wantTxPL))
			}
			for i, want := range tc.wantTxPL {
				p := stats.Transactions[i]
				if want == nil {
					if p.HasPL {
						t.Errorf("#%d TransactionPL = %s, want none", i, p.TransactionPL.Decimal())
					}
					continue
				}
				if !p.HasPL {
					t.Errorf("#%d TransactionPL is absent, want %v", i, *want)
					continue
				}
				assertMoney(t, "TransactionPL", p.TransactionPL, *want)
			}
			last := stats.Transactions[len(stats.Transactions)-1]
			if !last.CumulativeRealizedPL.Equal(stats.RealizedPL) {
				t.Errorf("last CumulativeRealizedPL = %s, want %s", last.CumulativeRealizedPL.Decimal(), stats.RealizedPL.Decimal())
			}
		})
	}
}

func TestCompute_PostTradeSnapshots(t *testing.T) {
	ledger := Ledger{buy("2024-01-01", 10, 100), sell("2024-01-02", 4, 150), sell("2024-01-03", 6, 50)}
	stats := Compute(ledger, Unavailable)

	wantAverage := []float64{100, 100, 0}
	wantCumulative := []float64{0, 200, -100}
	for i, p := range stats.Transactions {
		assertMoney(t, "PostTradeAveragePrice", p.PostTradeAveragePrice, wantAverage[i])
		assertMoney(t, "CumulativeRealizedPL", p.CumulativeRealizedPL, wantCumulative[i])
	}
}

func TestCompute_StableSameDay(t *testing.T) {
	// Both orders of the same trades on the same day, the second sell has
	// nothing to sell from when it comes first.
	b := buy("2024-01-01", 1, 100)
	s := sell("2024-01-01", 1, 120)

	buyFirst := Compute(Ledger{b, s}, Unavailable)
	if buyFirst.Transactions[0].ID != b.ID || buyFirst.Transactions[1].ID != s.ID {
		t.Fatalf("same day trades were reordered")
	}
	assertMoney(t, "RealizedPL", buyFirst.RealizedPL, 20)
	assertQuantity(t, "TotalQuantity", buyFirst.TotalQuantity, 0)

	sellFirst := Compute(Ledger{s, b}, Unavailable)
	if sellFirst.Transactions[0].ID != s.ID || sellFirst.Transactions[1].ID != b.ID {
		t.Fatalf("same day trades were reordered")
	}
	if sellFirst.Transactions[0].HasPL {
		t.Errorf("sell before any buy realized a P&L")
	}
	assertMoney(t, "RealizedPL", sellFirst.RealizedPL, 0)
	assertQuantity(t, "TotalQuantity", sellFirst.TotalQuantity, 1)
}

func TestCompute_Deterministic(t *testing.T) {
	ledger := Ledger{
		buy("2024-03-01", 0.3, 61234.5),
		buy("2024-01-01", 1.7, 40123.25),
		sell("2024-02-01", 0.9, 52000),
		buy("2024-02-01", 0.1, 51000),
	}
	before := append(Ledger(nil), ledger...)
	quote := QuoteOf(M(65000))

	a := Compute(ledger, quote)
	b := Compute(ledger, quote)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Compute is not deterministic:\n%+v\n%+v", a, b)
	}
	if !reflect.DeepEqual(ledger, before) {
		t.Errorf("Compute modified its input")
	}
}

func TestCompute_Quote(t *testing.T) {
	ledger := Ledger{buy("2024-01-01", 10, 100), sell("2024-01-02", 4, 150)}

	testCases := []struct {
		name            string
		quote           Quote
		wantValued      bool
		wantMarketValue float64
		wantUnrealized  float64
	}{
		{name: "absent", quote: Unavailable},
		{name: "zero", quote: QuoteOf(M(0)), wantValued: true, wantMarketValue: 0, wantUnrealized: -600},
		{name: "up", quote: QuoteOf(M(120)), wantValued: true, wantMarketValue: 720, wantUnrealized: 120},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := Compute(ledger, tc.quote)
			if stats.Valued != tc.wantValued {
				t.Fatalf("Valued = %v, want %v", stats.Valued, tc.wantValued)
			}
			if !stats.Valued {
				if !stats.MarketValue.IsZero() || !stats.UnrealizedPL.IsZero() {
					t.Errorf("absent quote produced values %s, %s", stats.MarketValue.Decimal(), stats.UnrealizedPL.Decimal())
				}
				return
			}
			assertMoney(t, "MarketValue", stats.MarketValue, tc.wantMarketValue)
			assertMoney(t, "UnrealizedPL", stats.UnrealizedPL, tc.wantUnrealized)
		})
	}
}

func TestStats_UnrealizedPercent(t *testing.T) {
	testCases := []struct {
		name   string
		ledger Ledger
		quote  Quote
		want   string
		wantOK bool
	}{
		{name: "no quote", ledger: Ledger{buy("2024-01-01", 1, 100)}, quote: Unavailable},
		{name: "gain", ledger: Ledger{buy("2024-01-01", 2, 100)}, quote: QuoteOf(M(125)), want: "25", wantOK: true},
		{name: "loss", ledger: Ledger{buy("2024-01-01", 2, 100)}, quote: QuoteOf(M(50)), want: "-50", wantOK: true},
		{name: "flat", ledger: nil, quote: QuoteOf(M(50)), want: "0", wantOK: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Compute(tc.ledger, tc.quote).UnrealizedPercent()
			if ok != tc.wantOK {
				t.Fatalf("UnrealizedPercent() ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("UnrealizedPercent() = %s, want %s", got, tc.want)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
