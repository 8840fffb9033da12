// Package binance fetches spot prices from the public Binance ticker API.
package binance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/etnz/spot"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the public Binance API.
const DefaultBaseURL = "https://api.binance.com"

// ErrMalformed is returned when the API answers something that is not a
// positive price.
var ErrMalformed = errors.New("malformed price payload")

// Options configure a Client. Zero values are replaced by defaults.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client is a Binance ticker client. It is safe for concurrent use.
type Client struct {
	base    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	log     zerolog.Logger
}

// New creates a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger.With().Str("component", "binance").Logger()

	st := gobreaker.Settings{
		Name:        "binance",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Info().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	}

	return &Client{
		base:    opts.BaseURL,
		http:    hc,
		breaker: gobreaker.NewCircuitBreaker(st),
		log:     log,
	}
}

// Price returns the latest price of the symbol.
func (c *Client) Price(ctx context.Context, symbol string) (spot.Money, error) {
	addr := c.base + "/api/v3/ticker/price?" + url.Values{"symbol": {symbol}}.Encode()

	v, err := c.breaker.Execute(func() (interface{}, error) {
		var jobj any
		if err := jwget(ctx, c.http, addr, &jobj); err != nil {
			return nil, err
		}
		return parsePrice(jobj)
	})
	if err != nil {
		return spot.Money{}, fmt.Errorf("cannot get price of %s: %w", symbol, err)
	}
	return v.(spot.Money), nil
}

// parsePrice extracts the price of a ticker payload like {"symbol":"BTCUSDT","price":"65000.12"}.
func parsePrice(jobj any) (spot.Money, error) {
	jval, err := jget("$.price", jobj)
	if err != nil {
		return spot.Money{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	var price spot.Money
	switch v := jval.(type) {
	case string:
		price, err = spot.ParseMoney(v)
		if err != nil {
			return spot.Money{}, fmt.Errorf("%w: %q", ErrMalformed, v)
		}
	case float64:
		price = spot.M(v)
	default:
		return spot.Money{}, fmt.Errorf("%w: price is %T", ErrMalformed, jval)
	}
	if !price.IsPositive() {
		return spot.Money{}, fmt.Errorf("%w: non positive price %s", ErrMalformed, price.Decimal())
	}
	return price, nil
}

// Quote returns the market quote of a symbol of the catalog. Symbols without
// API are never queried. Any failure is logged and reported as
// [spot.Unavailable].
func (c *Client) Quote(ctx context.Context, sym spot.Symbol) spot.Quote {
	if !sym.HasAPI {
		return spot.Unavailable
	}
	price, err := c.Price(ctx, sym.ID)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", sym.ID).Msg("quote unavailable")
		return spot.Unavailable
	}
	return spot.QuoteOf(price)
}
