// Package exchangerate computes, caches and manages the exchange rates quoted
// to customers.
package exchangerate

import (
	"context"
	"time"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

// TomanToRial converts the feed's Toman prices to IRR.
const TomanToRial = 10

// SpotQuote is one currency's price from the market feed.
type SpotQuote struct {
	Currency   exchangerate.Currency
	PriceToman float64
	Change     float64
}

// SpotQuotes is a full market feed read, keyed by stable currency code.
type SpotQuotes struct {
	Quotes    map[exchangerate.Currency]SpotQuote
	FetchedAt time.Time
}

// MarketDataClient fetches spot prices for every supported base currency.
// Implementations fail with exchangerate.ErrUpstreamUnavailable, or a
// *exchangerate.MissingRateError when a required currency is absent or invalid.
type MarketDataClient interface {
	FetchSpotPrices(ctx context.Context) (*SpotQuotes, error)
	Name() string
}

// RateSnapshot is the single cached set of computed rates.
type RateSnapshot struct {
	FetchedAt time.Time
	Rates     []exchangerate.ExchangeRate
}

// SnapshotStore holds at most one RateSnapshot. Load returns nil, nil when empty.
type SnapshotStore interface {
	Load(ctx context.Context) (*RateSnapshot, error)
	Save(ctx context.Context, snapshot *RateSnapshot) error
	Clear(ctx context.Context) error
}

// Cache lookup outcomes reported to RateMetrics.
const (
	CacheFresh = "fresh"
	CacheStale = "stale"
	CacheMiss  = "miss"
)

// RateMetrics receives rate engine telemetry.
type RateMetrics interface {
	CacheLookup(outcome string)
	RefreshCompleted(source string, err error, elapsed time.Duration)
	StaleFallback()
}

type nopMetrics struct{}

func (nopMetrics) CacheLookup(string) {}
func (nopMetrics) RefreshCompleted(string, error, time.Duration) {}
func (nopMetrics) StaleFallback() {}

// NopMetrics discards all telemetry.
var NopMetrics RateMetrics = nopMetrics{}
