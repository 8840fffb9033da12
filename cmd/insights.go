package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/spot/agent"
	"github.com/google/subcommands"
)

type insightsCmd struct {
	refresh bool
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "comment on the position of the active symbol with Gemini" }
func (*insightsCmd) Usage() string {
	return `spt insights [-refresh]

  Asks Gemini for a short analysis of the position of the active symbol.

  The answer is kept until the ledger of the symbol changes, use -refresh to
  ask again. It requires a Gemini API key, from insight.api_key in the
  configuration or $GEMINI_API_KEY.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Ignore the cached insight.")
}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(func(s *session) (bool, error) {
		msgs := s.msgs()
		sym := s.state.Symbol
		title := fmt.Sprintf("## %s · %s\n\n", msgs.Insights, sym.Alias)

		if text, ok := s.state.CachedInsight(); ok && !c.refresh {
			printMarkdown(title + text + "\n")
			return false, nil
		}

		analyst, err := agent.New(ctx, s.cfg.Insight.APIKey, s.cfg.Insight.Model, s.log)
		if err != nil {
			// the fallback message is shown, nothing is cached
			s.log.Warn().Err(err).Msg("cannot create the analyst")
		}
		q := s.quote(ctx)
		text := analyst.Insights(ctx, sym.Alias, s.stats(q), q, s.state.Language)
		printMarkdown(title + text + "\n")
		if text == msgs.InsightFallback {
			return false, nil
		}
		s.state.SetInsight(text)
		return true, nil
	})
}
