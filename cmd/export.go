package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spot"
	"github.com/etnz/spot/date"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the history of the active symbol as CSV" }
func (*exportCmd) Usage() string {
	return `spt export [-o <file>]

  Writes the processed transactions of the active symbol, oldest first, as a
  CSV file with the columns Date,Type,Price,Quantity,AvgPriceAfter,TransactionPL.

  The file defaults to SpotTracer_<alias>_<today>.csv, "-" writes to the
  standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, '-' for the standard output.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(s *session) (bool, error) {
		processed := s.stats(spot.Unavailable).Transactions
		if c.output == "-" {
			return false, spot.WriteCSV(stdout, processed)
		}
		name := c.output
		if name == "" {
			name = spot.ExportFilename(s.state.Symbol.Alias, date.Today())
		}
		out, err := os.Create(name)
		if err != nil {
			return false, err
		}
		if err := spot.WriteCSV(out, processed); err != nil {
			out.Close()
			return false, err
		}
		if err := out.Close(); err != nil {
			return false, err
		}
		fmt.Fprintf(stdout, "%s: %s\n", s.msgs().Exported, name)
		return false, nil
	})
}
