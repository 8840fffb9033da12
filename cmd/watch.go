package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/etnz/spot"
	"github.com/etnz/spot/renderer"
	"github.com/etnz/spot/watch"
	"github.com/google/subcommands"
)

type watchCmd struct {
	count int
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "display the summary of the active symbol as the price moves" }
func (*watchCmd) Usage() string {
	return `spt watch [-n <count>]

  Polls the market price of the active symbol (every quote.interval, 20s by
  default) and displays the summary after every poll, until interrupted.

  When a poll fails the market value is not displayed rather than showing a
  stale price.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 0, "Exit after <count> updates, 0 to run until interrupted.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(s *session) (bool, error) {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		ledger, msgs := s.state.Ledger(), s.msgs()
		var mu sync.Mutex
		updates := 0

		p := watch.New(s.quotes(), s.cfg.Quote.Interval, s.log)
		p.OnQuote(func(sym spot.Symbol, q spot.Quote) {
			mu.Lock()
			defer mu.Unlock()
			if isTerminal(stdout) {
				fmt.Fprint(stdout, "\033[H\033[2J")
			}
			stats := spot.Compute(ledger, q)
			printMarkdown(renderer.RenderSummary(renderer.NewSummary(sym.Alias, stats, q, msgs)))
			updates++
			if c.count > 0 && updates >= c.count {
				cancel()
			}
		})
		p.Start(ctx, s.state.Symbol)
		<-ctx.Done()
		p.Stop()
		return false, nil
	})
}
