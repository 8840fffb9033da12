// Package watch polls the market price of the active symbol.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/etnz/spot"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultInterval is the time between two polls.
const DefaultInterval = 20 * time.Second

// Quoter returns the current quote of a symbol, [spot.Unavailable] on failure.
type Quoter interface {
	Quote(ctx context.Context, sym spot.Symbol) spot.Quote
}

// Poller keeps the latest quote of one symbol up to date.
//
// A failed poll replaces the previous quote with [spot.Unavailable]: a price
// that could not be refreshed is never shown.
type Poller struct {
	quoter   Quoter
	interval time.Duration
	log      zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	cron   *cron.Cron
	wg     sync.WaitGroup

	mu      sync.Mutex
	symbol  spot.Symbol
	epoch   uint64 // epoch changes with the symbol
	seq     uint64 // seq numbers polls
	applied uint64 // applied is the seq of the latest applied poll
	latest  spot.Quote
	onQuote func(spot.Symbol, spot.Quote)
}

// New creates a Poller. A non positive interval is [DefaultInterval].
func New(q Quoter, interval time.Duration, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		quoter:   q,
		interval: interval,
		log:      log.With().Str("component", "watch").Logger(),
	}
}

// OnQuote registers f to be called after every applied poll. f is called from
// the polling goroutine.
func (p *Poller) OnQuote(f func(spot.Symbol, spot.Quote)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onQuote = f
}

// Start polls sym immediately and then on every interval, until ctx is done
// or Stop is called.
func (p *Poller) Start(ctx context.Context, sym spot.Symbol) {
	p.mu.Lock()
	p.symbol = sym
	p.epoch++
	p.latest = spot.Unavailable
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	p.cron.Schedule(cron.Every(p.interval), cron.FuncJob(p.poll))
	p.mu.Unlock()

	p.cron.Start()
	p.log.Debug().Str("symbol", sym.ID).Dur("interval", p.interval).Msg("poller started")
	p.pollNow()
}

// SetSymbol switches the polled symbol and polls it immediately. The quote of
// the previous symbol is forgotten, and polls of it still in flight are
// dropped.
func (p *Poller) SetSymbol(sym spot.Symbol) {
	p.mu.Lock()
	p.symbol = sym
	p.epoch++
	p.latest = spot.Unavailable
	p.mu.Unlock()
	p.pollNow()
}

// Latest returns the polled symbol and its latest quote.
func (p *Poller) Latest() (spot.Symbol, spot.Quote) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.symbol, p.latest
}

// Stop stops polling and waits for running polls to return.
func (p *Poller) Stop() {
	p.mu.Lock()
	c, cancel := p.cron, p.cancel
	p.mu.Unlock()
	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
	p.wg.Wait()
	p.log.Debug().Msg("poller stopped")
}

func (p *Poller) pollNow() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.poll()
	}()
}

func (p *Poller) poll() {
	p.mu.Lock()
	ctx := p.ctx
	sym, epoch := p.symbol, p.epoch
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}
	if !sym.HasAPI {
		p.apply(sym, epoch, seq, spot.Unavailable)
		return
	}
	p.apply(sym, epoch, seq, p.quoter.Quote(ctx, sym))
}

func (p *Poller) apply(sym spot.Symbol, epoch, seq uint64, q spot.Quote) {
	p.mu.Lock()
	if epoch != p.epoch || seq < p.applied || p.ctx.Err() != nil {
		p.mu.Unlock()
		p.log.Debug().Str("symbol", sym.ID).Msg("dropping stale quote")
		return
	}
	p.applied = seq
	p.latest = q
	f := p.onQuote
	p.mu.Unlock()

	if f != nil {
		f(sym, q)
	}
}
