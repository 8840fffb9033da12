package spot

import "github.com/shopspring/decimal"

// dust is the quantity under which a position is considered closed.
var dust = Q(decimal.New(1, -8))

// Quote is an optional market price. The zero value is [Unavailable].
type Quote struct {
	Price Money
	Valid bool
}

// Unavailable is the absence of a market price.
var Unavailable = Quote{}

// QuoteOf returns a valid quote for this price. A zero price is a valid quote.
func QuoteOf(price Money) Quote { return Quote{Price: price, Valid: true} }

// ProcessedTransaction is a transaction augmented with the state of the
// position right after it.
type ProcessedTransaction struct {
	Transaction
	PostTradeAveragePrice Money // PostTradeAveragePrice is the average price after this trade.
	// TransactionPL is the P&L realized by this trade. It is only meaningful
	// when HasPL is true, that is for sells that reduced a non zero position.
	TransactionPL        Money
	HasPL                bool
	CumulativeRealizedPL Money // CumulativeRealizedPL is the realized P&L through this trade.
}

// Stats is the derived state of a ledger.
type Stats struct {
	AveragePrice  Money
	TotalQuantity Quantity
	CostBasis     Money // CostBasis is the total cost of the held quantity.
	RealizedPL    Money

	// Valued is true when a market price was known. MarketValue and
	// UnrealizedPL are absent otherwise, which is not the same as zero.
	Valued       bool
	MarketValue  Money
	UnrealizedPL Money

	// Transactions are the processed transactions in chronological order.
	Transactions []ProcessedTransaction
}

// UnrealizedPercent returns the unrealized P&L as a percentage of the held
// cost. When nothing is held the unrealized P&L is divided by one.
func (s Stats) UnrealizedPercent() (decimal.Decimal, bool) {
	if !s.Valued {
		return decimal.Zero, false
	}
	base := s.AveragePrice.Mul(s.TotalQuantity).Decimal()
	if base.IsZero() {
		base = decimal.NewFromInt(1)
	}
	return s.UnrealizedPL.Decimal().Div(base).Mul(decimal.NewFromInt(100)), true
}

// position is the running accumulator of Compute.
type position struct {
	quantity Quantity
	cost     Money
	average  Money
	realized Money
}

// apply applies one transaction and returns the P&L it realized, if any.
func (p *position) apply(tx Transaction) (pl Money, realized bool) {
	prior := p.average
	switch tx.Kind {
	case Buy:
		p.cost = p.cost.Add(tx.Price.Mul(tx.Quantity))
		p.quantity = p.quantity.Add(tx.Quantity)
		if p.quantity.IsPositive() {
			p.average = p.cost.Div(p.quantity)
		} else {
			p.average = Money{}
		}
		return Money{}, false

	case Sell:
		if p.quantity.IsPositive() {
			pl = tx.Price.Sub(prior).Mul(tx.Quantity)
			realized = true
			p.realized = p.realized.Add(pl)
			p.cost = p.cost.Sub(prior.Mul(tx.Quantity))
			p.quantity = p.quantity.Sub(tx.Quantity)
		}
		// Anything under dust is flat, including the negative residue of an
		// oversell.
		if p.quantity.LessThan(dust) {
			p.quantity, p.cost, p.average = Quantity{}, Money{}, Money{}
		}
	}
	return pl, realized
}

// Compute derives the cost basis and P&L of a ledger.
//
// Transactions are processed in date order, ties keep the ledger order. The
// quote, when valid, values the remaining position. Compute is a pure
// function: it does not modify the ledger and returns identical stats for
// identical inputs.
//
// Every transaction is expected to have a positive price and quantity, this
// is validated when the transaction is created, not here.
func Compute(ledger Ledger, quote Quote) Stats {
	sorted := ledger.Sorted()

	var p position
	processed := make([]ProcessedTransaction, 0, len(sorted))
	for _, tx := range sorted {
		pl, ok := p.apply(tx)
		processed = append(processed, ProcessedTransaction{
			Transaction:           tx,
			PostTradeAveragePrice: p.average,
			TransactionPL:         pl,
			HasPL:                 ok,
			CumulativeRealizedPL:  p.realized,
		})
	}

	stats := Stats{
		AveragePrice:  p.average,
		TotalQuantity: p.quantity,
		CostBasis:     p.cost,
		RealizedPL:    p.realized,
		Transactions:  processed,
	}
	if quote.Valid {
		stats.Valued = true
		stats.MarketValue = quote.Price.Mul(p.quantity)
		stats.UnrealizedPL = quote.Price.Sub(p.average).Mul(p.quantity)
	}
	return stats
}
