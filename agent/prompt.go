package agent

import (
	"fmt"
	"strings"

	"github.com/etnz/spot"
	"github.com/etnz/spot/locale"
)

// recent is the number of transactions quoted in the prompt.
const recent = 5

// Prompt returns the request sent to the model.
func Prompt(alias string, stats spot.Stats, quote spot.Quote, lang locale.Language) string {
	price, unrealized := "N/A", "N/A"
	if quote.Valid {
		price = "$" + quote.Price.StringFixed(4)
		unrealized = "$" + stats.UnrealizedPL.StringFixed(2)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following trading portfolio for %s:\n", alias)
	fmt.Fprintf(&b, "- Current Average Cost: $%s\n", stats.AveragePrice.StringFixed(4))
	fmt.Fprintf(&b, "- Holding Quantity: %s\n", stats.TotalQuantity.StringFixed(6))
	fmt.Fprintf(&b, "- Realized Profit/Loss: $%s\n", stats.RealizedPL.StringFixed(2))
	fmt.Fprintf(&b, "- Market Price: %s\n", price)
	fmt.Fprintf(&b, "- Unrealized Profit/Loss: %s\n", unrealized)
	b.WriteString("\nRecent Transactions:\n")

	txs := stats.Transactions
	if len(txs) > recent {
		txs = txs[len(txs)-recent:]
	}
	for _, tx := range txs {
		fmt.Fprintf(&b, "- %s: %s %s @ $%s\n", tx.Date, strings.ToUpper(string(tx.Kind)), tx.Quantity, tx.Price.Decimal())
	}

	b.WriteString("\nProvide a concise (2-3 sentences) analysis of the performance and a strategic suggestion based on current market standing.\n")
	b.WriteString("Focus on risk management and cost basis.\n")
	if lang == locale.Chinese {
		b.WriteString("Please provide the analysis in Chinese.\n")
	} else {
		b.WriteString("Please provide the analysis in English.\n")
	}
	return b.String()
}
