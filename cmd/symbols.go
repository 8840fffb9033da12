package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spot"
	"github.com/etnz/spot/locale"
	"github.com/etnz/spot/renderer"
	"github.com/google/subcommands"
)

type symbolsCmd struct{}

func (*symbolsCmd) Name() string     { return "symbols" }
func (*symbolsCmd) Synopsis() string { return "list the supported symbols" }
func (*symbolsCmd) Usage() string {
	return `spt symbols

  Lists the supported symbols, whether a live quote exists for them, and the
  active one.
`
}

func (*symbolsCmd) SetFlags(f *flag.FlagSet) {}

func (*symbolsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(s *session) (bool, error) {
		printMarkdown(renderer.SymbolsMarkdown(spot.DefaultCatalog, s.state.Symbol, s.msgs()))
		return false, nil
	})
}

type useCmd struct{}

func (*useCmd) Name() string     { return "use" }
func (*useCmd) Synopsis() string { return "select the active symbol" }
func (*useCmd) Usage() string {
	return `spt use <symbol>

  Makes <symbol> the active symbol. <symbol> is either the symbol (BTCUSDT) or
  its alias (BTC), case insensitive.
`
}

func (*useCmd) SetFlags(f *flag.FlagSet) {}

func (*useCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: use takes exactly one symbol")
		return subcommands.ExitUsageError
	}
	return run(func(s *session) (bool, error) {
		sym, ok := spot.DefaultCatalog.Lookup(f.Arg(0))
		if !ok {
			return false, fmt.Errorf("unknown symbol %q, run 'spt symbols' for the list", f.Arg(0))
		}
		s.state.Use(sym)
		fmt.Fprintf(stdout, "%s (%s)\n", sym.Alias, sym.ID)
		return true, nil
	})
}

type langCmd struct{}

func (*langCmd) Name() string     { return "lang" }
func (*langCmd) Synopsis() string { return "select the display language" }
func (*langCmd) Usage() string {
	return `spt lang [en|zh]

  Selects the display language. Without argument, toggles between English and
  Chinese.
`
}

func (*langCmd) SetFlags(f *flag.FlagSet) {}

func (*langCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: lang takes at most one language")
		return subcommands.ExitUsageError
	}
	return run(func(s *session) (bool, error) {
		l := s.state.Language.Toggle()
		if f.NArg() == 1 {
			var err error
			if l, err = locale.Parse(f.Arg(0)); err != nil {
				return false, err
			}
		}
		s.state.Language = l
		fmt.Fprintln(stdout, l)
		return true, nil
	})
}
