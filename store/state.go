package store

import (
	"encoding/json"
	"strings"

	"github.com/etnz/spot"
	"github.com/etnz/spot/locale"
	"github.com/rs/zerolog"
)

// Keys of the persisted values.
const (
	PortfolioKey = "spot_tracer_portfolio_v6"
	SymbolKey    = "spot_tracer_current_symbol_v6"
	LanguageKey  = "spot_tracer_lang"
	InsightKey   = "spot_tracer_insight_v6"
)

// Insight is a generated commentary, valid for the symbol and language it was
// generated for, until that symbol's ledger changes.
type Insight struct {
	Symbol   string          `json:"symbol"`
	Language locale.Language `json:"lang"`
	Text     string          `json:"text"`
}

// State is everything the command line remembers between runs.
type State struct {
	Portfolio spot.Portfolio
	Symbol    spot.Symbol // Symbol is the active symbol.
	Language  locale.Language
	Insight   Insight
}

// Load reads the state from kv. It never fails: absent or unreadable values
// are replaced by an empty portfolio, the first symbol of the catalog and the
// fallback language, and reported as warnings.
//
// An unreadable portfolio is copied under PortfolioKey+".corrupt" first, so
// that the next Save does not lose it.
func Load(kv KV, catalog spot.Catalog, fallback locale.Language, log zerolog.Logger) State {
	s := State{
		Portfolio: make(spot.Portfolio),
		Symbol:    catalog.Default(),
		Language:  fallback,
	}

	if raw, ok := get(kv, PortfolioKey, log); ok {
		p, err := spot.DecodePortfolio(strings.NewReader(raw))
		if err != nil {
			log.Warn().Err(err).Str("key", PortfolioKey).Msg("corrupt portfolio, starting empty")
			if err := kv.Set(PortfolioKey+".corrupt", raw); err != nil {
				log.Error().Err(err).Msg("cannot back up corrupt portfolio")
			}
		} else {
			s.Portfolio = p
		}
	}

	if raw, ok := get(kv, SymbolKey, log); ok {
		if sym, found := catalog.Lookup(raw); found {
			s.Symbol = sym
		} else {
			log.Warn().Str("symbol", raw).Msg("unknown symbol, using the default one")
		}
	}

	if raw, ok := get(kv, LanguageKey, log); ok {
		if l, err := locale.Parse(raw); err == nil {
			s.Language = l
		} else {
			log.Warn().Err(err).Msg("unknown language, using the detected one")
		}
	}

	if raw, ok := get(kv, InsightKey, log); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.Insight); err != nil {
			log.Debug().Err(err).Msg("dropping unreadable insight")
			s.Insight = Insight{}
		}
	}
	return s
}

func get(kv KV, key string, log zerolog.Logger) (string, bool) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cannot read state")
		return "", false
	}
	return raw, ok
}

// Save writes every value of the state.
func (s State) Save(kv KV) error {
	var p strings.Builder
	if err := spot.EncodePortfolio(&p, s.Portfolio); err != nil {
		return err
	}
	insight, err := json.Marshal(s.Insight)
	if err != nil {
		return err
	}
	for _, e := range [][2]string{
		{PortfolioKey, strings.TrimSpace(p.String())},
		{SymbolKey, s.Symbol.ID},
		{LanguageKey, string(s.Language)},
		{InsightKey, string(insight)},
	} {
		if err := kv.Set(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// Ledger returns the ledger of the active symbol.
func (s *State) Ledger() spot.Ledger { return s.Portfolio.Ledger(s.Symbol.ID) }

// Use makes sym the active symbol.
func (s *State) Use(sym spot.Symbol) { s.Symbol = sym }

// Record adds a transaction to the active symbol.
func (s *State) Record(tx spot.Transaction) error {
	return s.change(func(p spot.Portfolio) (spot.Portfolio, error) { return p.Add(s.Symbol.ID, tx) })
}

// Replace replaces a transaction of the active symbol.
func (s *State) Replace(tx spot.Transaction) error {
	return s.change(func(p spot.Portfolio) (spot.Portfolio, error) { return p.Replace(s.Symbol.ID, tx) })
}

// Delete deletes a transaction of the active symbol.
func (s *State) Delete(id string) error {
	return s.change(func(p spot.Portfolio) (spot.Portfolio, error) { return p.Delete(s.Symbol.ID, id) })
}

// change applies f and, on success, invalidates the insight of the active
// symbol. On error the state is unchanged.
func (s *State) change(f func(spot.Portfolio) (spot.Portfolio, error)) error {
	p, err := f(s.Portfolio)
	if err != nil {
		return err
	}
	s.Portfolio = p
	if s.Insight.Symbol == s.Symbol.ID {
		s.Insight = Insight{}
	}
	return nil
}

// CachedInsight returns the cached insight of the active symbol in the active
// language.
func (s *State) CachedInsight() (string, bool) {
	in := s.Insight
	if in.Text == "" || in.Symbol != s.Symbol.ID || in.Language != s.Language {
		return "", false
	}
	return in.Text, true
}

// SetInsight caches the insight of the active symbol.
func (s *State) SetInsight(text string) {
	s.Insight = Insight{Symbol: s.Symbol.ID, Language: s.Language, Text: text}
}
