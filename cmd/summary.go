package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/spot"
	"github.com/etnz/spot/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	update bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the cost basis and P&L of the active symbol" }
func (*summaryCmd) Usage() string {
	return `spt summary [-u=false]

  Displays the average buy price, the holdings and the realized P&L of the
  active symbol. When a market price can be fetched, also displays the market
  value and the unrealized P&L.

  The last insight, if still valid, is displayed below.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", true, "Fetch the market price. When false the market value is not displayed.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(s *session) (bool, error) {
		q := spot.Unavailable
		if c.update {
			q = s.quote(ctx)
		}
		sym := s.state.Symbol
		md := renderer.RenderSummary(renderer.NewSummary(sym.Alias, s.stats(q), q, s.msgs()))
		if text, ok := s.state.CachedInsight(); ok {
			md += fmt.Sprintf("\n## %s\n\n%s\n", s.msgs().Insights, text)
		}
		printMarkdown(md)
		return false, nil
	})
}
