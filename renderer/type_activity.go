package renderer

import (
	"github.com/etnz/spot"
	"github.com/etnz/spot/locale"
)

// ShortIDLen is the number of characters of the transaction ID displayed in
// the activity history.
const ShortIDLen = 8

// Activity is the transaction history of one symbol, most recent first.
type Activity struct {
	Alias  string
	Labels locale.Messages
	Rows   []ActivityRow
}

// ActivityRow is a single processed transaction, formatted for display.
type ActivityRow struct {
	ID            string
	Date          string
	Type          string
	Price         string
	Quantity      string
	Volume        string
	AvgPriceAfter string
	// RealizedPL is empty for trades that did not realize anything.
	RealizedPL string
}

// NewActivity creates the activity history from processed transactions in
// chronological order. Rows are listed in reverse chronological order.
func NewActivity(alias string, processed []spot.ProcessedTransaction, msgs locale.Messages) *Activity {
	a := &Activity{
		Alias:  alias,
		Labels: msgs,
		Rows:   make([]ActivityRow, 0, len(processed)),
	}
	for i := len(processed) - 1; i >= 0; i-- {
		p := processed[i]
		row := ActivityRow{
			ID:            shortID(p.ID),
			Date:          p.Date.String(),
			Type:          msgs.Buy,
			Price:         p.Price.String(),
			Quantity:      p.Quantity.StringFixed(4),
			Volume:        p.Volume().String(),
			AvgPriceAfter: p.PostTradeAveragePrice.String(),
		}
		if p.Kind == spot.Sell {
			row.Type = msgs.Sell
		}
		if p.HasPL {
			row.RealizedPL = signed(p.TransactionPL)
		}
		a.Rows = append(a.Rows, row)
	}
	return a
}

func shortID(id string) string {
	if len(id) > ShortIDLen {
		return id[:ShortIDLen]
	}
	return id
}
