package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/spot"
	"github.com/etnz/spot/binance"
	"github.com/etnz/spot/config"
	"github.com/etnz/spot/locale"
	"github.com/etnz/spot/logging"
	"github.com/etnz/spot/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// stdout receives the output of the commands.
var stdout io.Writer = os.Stdout

// session is the state of a command: configuration, store and the state
// read from it.
type session struct {
	cfg   *config.Config
	log   zerolog.Logger
	kv    store.KV
	state store.State
}

// openSession loads the configuration and the state.
func openSession() (*session, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level, lc.File = cfg.Log.Level, cfg.Log.File
	log := logging.New(lc)

	kv, err := store.Open(cfg.Store.Driver, cfg.Store.Path, log)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("driver", cfg.Store.Driver).Str("path", cfg.Store.Path).Msg("store opened")

	return &session{
		cfg:   cfg,
		log:   log,
		kv:    kv,
		state: store.Load(kv, spot.DefaultCatalog, fallbackLanguage(cfg), log),
	}, nil
}

// fallbackLanguage is the configured language, or the one of the environment.
func fallbackLanguage(cfg *config.Config) locale.Language {
	if l, err := locale.Parse(cfg.Language); err == nil {
		return l
	}
	return locale.Detect(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

func (s *session) msgs() locale.Messages { return locale.For(s.state.Language) }

// save writes the state back to the store.
func (s *session) save() error {
	if err := s.state.Save(s.kv); err != nil {
		return fmt.Errorf("cannot save state: %w", err)
	}
	return nil
}

func (s *session) close() {
	if err := s.kv.Close(); err != nil {
		s.log.Error().Err(err).Msg("cannot close store")
	}
}

// quotes returns the quote client.
func (s *session) quotes() *binance.Client {
	return binance.New(binance.Options{
		BaseURL: s.cfg.Quote.BaseURL,
		Timeout: s.cfg.Quote.Timeout,
		Logger:  s.log,
	})
}

// quote returns the market quote of the active symbol.
func (s *session) quote(ctx context.Context) spot.Quote {
	return s.quotes().Quote(ctx, s.state.Symbol)
}

// stats computes the stats of the active symbol.
func (s *session) stats(q spot.Quote) spot.Stats {
	return spot.Compute(s.state.Ledger(), q)
}

// run opens a session and calls f with it. f returns true when the state
// changed and must be saved. Nothing is saved when f fails.
func run(f func(s *session) (changed bool, err error)) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.close()

	changed, err := f(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, userError(s.msgs(), err))
		return subcommands.ExitFailure
	}
	if changed {
		if err := s.save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// userError explains err in the user's language, with the details.
func userError(msgs locale.Messages, err error) string {
	switch {
	case errors.Is(err, spot.ErrInvalidInput):
		return fmt.Sprintf("%s\n%v", msgs.ErrorValidInput, err)
	case errors.Is(err, spot.ErrOversell):
		return fmt.Sprintf("%s\n%v", msgs.ErrorOversell, err)
	case errors.Is(err, spot.ErrNotFound):
		return fmt.Sprintf("%s\n%v", msgs.ErrorNotFound, err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// printMarkdown renders md on a terminal, and prints it as is otherwise.
func printMarkdown(md string) {
	if !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
