package spot

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/spot/date"
)

// bom makes spreadsheet tools read the file as UTF-8.
const bom = "\uFEFF"

var csvHeader = []string{"Date", "Type", "Price", "Quantity", "AvgPriceAfter", "TransactionPL"}

// WriteCSV writes the processed transactions, in the given order, as CSV.
//
// Numbers are written as raw decimals. TransactionPL is 0 for trades that did
// not realize anything.
func WriteCSV(w io.Writer, processed []ProcessedTransaction) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	for _, p := range processed {
		pl := "0"
		if p.HasPL {
			pl = p.TransactionPL.Decimal().String()
		}
		record := []string{
			p.Date.String(),
			string(p.Kind),
			p.Price.Decimal().String(),
			p.Quantity.String(),
			p.PostTradeAveragePrice.Decimal().String(),
			pl,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write csv: %w", err)
	}
	return nil
}

// ExportFilename is the default name of the CSV export of a symbol.
func ExportFilename(alias string, on date.Date) string {
	return fmt.Sprintf("SpotTracer_%s_%s.csv", alias, on)
}
