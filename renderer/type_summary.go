package renderer

import (
	"github.com/etnz/spot"
	"github.com/etnz/spot/locale"
)

// Summary is the summary card of one symbol.
// Every value is already formatted for display.
type Summary struct {
	// Alias is the display name of the symbol.
	Alias string
	// Labels are the messages of the user's language.
	Labels locale.Messages

	AvgBuyPrice string
	Holdings    string
	RealizedPL  string
	// MarketValue is "---" when no market price is known.
	MarketValue string

	// Valued is true when a market price is known. UnrealizedPL and
	// MarketPrice are empty otherwise.
	Valued       bool
	UnrealizedPL string
	MarketPrice  string
}

// noValue is displayed in place of a value that cannot be computed.
const noValue = "---"

// NewSummary creates the summary card of a symbol from its stats and quote.
func NewSummary(alias string, stats spot.Stats, quote spot.Quote, msgs locale.Messages) *Summary {
	s := &Summary{
		Alias:       alias,
		Labels:      msgs,
		AvgBuyPrice: stats.AveragePrice.String(),
		Holdings:    stats.TotalQuantity.StringFixed(4) + " " + alias,
		RealizedPL:  signed(stats.RealizedPL),
		MarketValue: noValue,
	}
	if !quote.Valid || !stats.Valued {
		return s
	}
	s.Valued = true
	s.MarketValue = stats.MarketValue.String()
	s.MarketPrice = quote.Price.String()

	arrow := "▲"
	if stats.UnrealizedPL.IsNegative() {
		arrow = "▼"
	}
	pct, _ := stats.UnrealizedPercent()
	s.UnrealizedPL = arrow + " " + stats.UnrealizedPL.String() + " (" + pct.StringFixed(2) + "%)"
	return s
}

// signed formats m with an explicit "+" unless it is negative.
func signed(m spot.Money) string {
	if m.IsNegative() {
		return m.String()
	}
	return "+" + m.String()
}
