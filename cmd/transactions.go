package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/spot"
	"github.com/etnz/spot/date"
	"github.com/etnz/spot/renderer"
	"github.com/google/subcommands"
)

// tradeCmd records a buy or a sell.
type tradeCmd struct {
	kind     string
	date     string
	price    string
	quantity string
	symbol   string
}

func (c *tradeCmd) Name() string     { return c.kind }
func (c *tradeCmd) Synopsis() string { return "record a " + c.kind + " of the active symbol" }
func (c *tradeCmd) Usage() string {
	return fmt.Sprintf(`spt %s -p <price> -q <quantity> [-d <date>] [-s <symbol>]

  Records a %s. The date defaults to today. With -s, the symbol becomes the
  active one first.

  A sell of more than the quantity held at that date is rejected.
`, c.kind, c.kind)
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.price, "p", "", "Unit price, positive.")
	f.StringVar(&c.quantity, "q", "", "Quantity, positive.")
	f.StringVar(&c.symbol, "s", "", "Symbol or alias. Defaults to the active symbol.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(s *session) (bool, error) {
		if err := useFlag(s, c.symbol); err != nil {
			return false, err
		}
		draft := spot.Draft{Date: c.date, Kind: c.kind, Price: c.price, Quantity: c.quantity}
		tx, err := spot.NewTransaction(draft, date.Today())
		if err != nil {
			return false, err
		}
		if err := s.state.Record(tx); err != nil {
			return false, err
		}
		s.log.Info().Str("symbol", s.state.Symbol.ID).Str("id", tx.ID).Msg("transaction recorded")
		fmt.Fprintf(stdout, "%s %s %s\n", shortID(tx.ID), s.state.Symbol.Alias, tx)
		return true, nil
	})
}

type editCmd struct {
	date     string
	kind     string
	price    string
	quantity string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace a transaction of the active symbol" }
func (*editCmd) Usage() string {
	return `spt edit [-d <date>] [-t buy|sell] [-p <price>] [-q <quantity>] <id>

  Replaces the transaction <id> of the active symbol. Fields that are not
  provided are kept. <id> can be shortened to any unambiguous prefix, as
  displayed by 'spt log'.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "New date (YYYY-MM-DD).")
	f.StringVar(&c.kind, "t", "", "New type, buy or sell.")
	f.StringVar(&c.price, "p", "", "New unit price.")
	f.StringVar(&c.quantity, "q", "", "New quantity.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit takes exactly one transaction id")
		return subcommands.ExitUsageError
	}
	return run(func(s *session) (bool, error) {
		old, err := findTransaction(s.state.Ledger(), f.Arg(0))
		if err != nil {
			return false, err
		}
		draft := spot.Draft{Date: c.date, Kind: c.kind, Price: c.price, Quantity: c.quantity}
		tx, err := draft.Amend(old)
		if err != nil {
			return false, err
		}
		if err := s.state.Replace(tx); err != nil {
			return false, err
		}
		fmt.Fprintf(stdout, "%s %s %s\n", shortID(tx.ID), s.state.Symbol.Alias, tx)
		return true, nil
	})
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction of the active symbol" }
func (*rmCmd) Usage() string {
	return `spt rm <id>

  Deletes the transaction <id> of the active symbol. Deleting a buy that a
  later sell depends on is rejected.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm takes exactly one transaction id")
		return subcommands.ExitUsageError
	}
	return run(func(s *session) (bool, error) {
		tx, err := findTransaction(s.state.Ledger(), f.Arg(0))
		if err != nil {
			return false, err
		}
		if err := s.state.Delete(tx.ID); err != nil {
			return false, err
		}
		fmt.Fprintf(stdout, "%s: %s %s\n", s.msgs().DeleteRecord, shortID(tx.ID), tx)
		return true, nil
	})
}

// useFlag makes the symbol named by a -s flag the active one.
func useFlag(s *session, name string) error {
	if name == "" {
		return nil
	}
	sym, ok := spot.DefaultCatalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown symbol %q, run 'spt symbols' for the list", name)
	}
	s.state.Use(sym)
	return nil
}

// findTransaction finds a transaction by id, or by a prefix matching a
// single id.
func findTransaction(l spot.Ledger, id string) (spot.Transaction, error) {
	if i := l.Index(id); i >= 0 {
		return l[i], nil
	}
	var found []spot.Transaction
	for _, tx := range l {
		if strings.HasPrefix(tx.ID, id) {
			found = append(found, tx)
		}
	}
	switch {
	case id == "" || len(found) == 0:
		return spot.Transaction{}, fmt.Errorf("%w: %q", spot.ErrNotFound, id)
	case len(found) > 1:
		return spot.Transaction{}, fmt.Errorf("%w: id %q is ambiguous, it matches %d transactions", spot.ErrInvalidInput, id, len(found))
	}
	return found[0], nil
}

func shortID(id string) string {
	if len(id) > renderer.ShortIDLen {
		return id[:renderer.ShortIDLen]
	}
	return id
}
