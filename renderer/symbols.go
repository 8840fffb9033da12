package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/spot"
	"github.com/etnz/spot/locale"
)

// SymbolsMarkdown renders the catalog, marking the active symbol.
func SymbolsMarkdown(catalog spot.Catalog, active spot.Symbol, msgs locale.Messages) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", msgs.Symbols)
	fmt.Fprintln(&b, "| Symbol | Alias | Quote | |")
	fmt.Fprintln(&b, "|:---|:---|:---:|:---|")
	for _, s := range catalog {
		quoted := " "
		if s.HasAPI {
			quoted = "X"
		}
		current := ""
		if s.ID == active.ID {
			current = msgs.Active
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.ID, s.Alias, quoted, current)
	}
	return b.String()
}
