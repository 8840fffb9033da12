// Package cmd implements the spt command line: record trades, display the
// cost basis and P&L of the active symbol, export it, and comment on it.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the spot.yaml configuration file. Defaults to $SPOT_CONFIG, then the user config directory.")

// Commands lists every subcommand, with its group.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"symbols", &symbolsCmd{}},
	{"symbols", &useCmd{}},
	{"symbols", &langCmd{}},

	{"transactions", &tradeCmd{kind: "buy"}},
	{"transactions", &tradeCmd{kind: "sell"}},
	{"transactions", &editCmd{}},
	{"transactions", &rmCmd{}},

	{"reports", &summaryCmd{}},
	{"reports", &logCmd{}},
	{"reports", &exportCmd{}},
	{"reports", &insightsCmd{}},
	{"reports", &watchCmd{}},

	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}
