package cmd

import (
	"flag"

	"github.com/etnz/spot"
	"github.com/etnz/spot/date"
	"github.com/etnz/spot/docs"
	"github.com/etnz/spot/locale"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// symbolNames predicts the symbols and their aliases.
func symbolNames() predict.Set {
	var names predict.Set
	for _, s := range spot.DefaultCatalog {
		names = append(names, s.ID, s.Alias)
	}
	return names
}

func languageNames() predict.Set {
	var names predict.Set
	for _, l := range locale.Languages {
		names = append(names, string(l))
	}
	return names
}

func periodNames() predict.Set {
	var names predict.Set
	for _, p := range []date.Period{date.Daily, date.Weekly, date.Monthly, date.Quarterly, date.Yearly} {
		names = append(names, p.String())
	}
	return names
}

// Completion returns the shell completion of every command.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()

	// predictors for specific flags and arguments, by command.
	flags := map[string]map[string]complete.Predictor{
		"buy":    {"s": symbolNames()},
		"sell":   {"s": symbolNames()},
		"edit":   {"t": predict.Set{string(spot.Buy), string(spot.Sell)}},
		"log":    {"p": periodNames()},
		"export": {"o": predict.Files("*.csv")},
	}
	args := map[string]complete.Predictor{
		"use":   symbolNames(),
		"lang":  languageNames(),
		"topic": predict.Set(append(topics, "readme", "*")),
	}

	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{"config": predict.Files("*.yaml")},
	}
	for _, e := range Commands {
		name := e.Command.Name()
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		e.Command.SetFlags(fs)

		c := &complete.Command{Flags: make(map[string]complete.Predictor), Args: predict.Nothing}
		fs.VisitAll(func(fl *flag.Flag) {
			if p, ok := flags[name][fl.Name]; ok {
				c.Flags[fl.Name] = p
				return
			}
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				c.Flags[fl.Name] = predict.Nothing
				return
			}
			c.Flags[fl.Name] = predict.Something
		})
		if p, ok := args[name]; ok {
			c.Args = p
		}
		root.Sub[name] = c
	}
	return root
}
