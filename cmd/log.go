package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spot"
	"github.com/etnz/spot/date"
	"github.com/etnz/spot/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	period string
	start  string
	end    string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the activity history of the active symbol" }
func (*logCmd) Usage() string {
	return `spt log [-p <period> | -s <start_date>] [-d <end_date>]

  Lists the transactions of the active symbol, most recent first, with the
  average price after each trade and the P&L it realized.

  The history can be limited to a period (day, week, month, quarter, year)
  containing the end date, or to a custom range. Averages and P&L are always
  computed over the whole history.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.end, "d", "", "The end date for the range. Defaults to today.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.within(date.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(func(s *session) (bool, error) {
		var rows []spot.ProcessedTransaction
		for _, p := range s.stats(spot.Unavailable).Transactions {
			if r.Contains(p.Date) {
				rows = append(rows, p)
			}
		}
		printMarkdown(renderer.RenderActivity(renderer.NewActivity(s.state.Symbol.Alias, rows, s.msgs())))
		return false, nil
	})
}

// within returns the range selected by the flags. Without flags the range is
// unbounded.
func (c *logCmd) within(today date.Date) (date.Range, error) {
	if c.start == "" && c.end == "" && c.period == "" {
		return date.Range{}, nil
	}
	end := today
	if c.end != "" {
		var err error
		if end, err = date.Parse(c.end); err != nil {
			return date.Range{}, fmt.Errorf("parsing end date: %w", err)
		}
	}
	if c.start != "" {
		start, err := date.Parse(c.start)
		if err != nil {
			return date.Range{}, fmt.Errorf("parsing start date: %w", err)
		}
		return date.Range{From: start, To: end}, nil
	}
	if c.period == "" {
		return date.Range{To: end}, nil
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		return date.Range{}, err
	}
	return date.Within(end, p), nil
}
