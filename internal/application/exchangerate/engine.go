package exchangerate

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

const refreshKey = "refresh"

// DefaultMarkups are applied to pairs without an active operator markup.
type DefaultMarkups struct {
	Buy  float64
	Sell float64
}

// RateEngine merges market prices with operator markups and serves them
// through a RateCache. Concurrent refreshes share one upstream call.
type RateEngine struct {
	cache    *RateCache
	market   MarketDataClient
	markups  exchangerate.MarkupRepository
	defaults DefaultMarkups
	metrics  RateMetrics
	group    singleflight.Group
	logger   logger.Interface
}

// NewRateEngine creates a RateEngine. A nil metrics discards telemetry.
func NewRateEngine(
	cache *RateCache,
	market MarketDataClient,
	markups exchangerate.MarkupRepository,
	defaults DefaultMarkups,
	metrics RateMetrics,
	logger logger.Interface,
) *RateEngine {
	if metrics == nil {
		metrics = NopMetrics
	}
	return &RateEngine{
		cache:    cache,
		market:   market,
		markups:  markups,
		defaults: defaults,
		metrics:  metrics,
		logger:   logger,
	}
}

// FetchLatestRates returns one rate per supported pair.
//
// A fresh snapshot is served with drift applied. Otherwise the engine
// refreshes; if that fails and any snapshot exists, its rates are returned
// unchanged. The error surfaces only when nothing was ever cached.
func (e *RateEngine) FetchLatestRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	snap, fresh, err := e.cache.Load(ctx)
	if err != nil {
		e.logger.Warnw("failed to read rate snapshot, refreshing", "error", err)
	}

	if fresh {
		e.metrics.CacheLookup(CacheFresh)
		return e.cache.Simulate(snap.Rates), nil
	}
	if snap != nil {
		e.metrics.CacheLookup(CacheStale)
	} else {
		e.metrics.CacheLookup(CacheMiss)
	}

	// callers share the refresh, so one caller going away must not cancel it
	v, err, shared := e.group.Do(refreshKey, func() (interface{}, error) {
		return e.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		if snap != nil {
			e.metrics.StaleFallback()
			e.logger.Warnw("rate refresh failed, serving stale rates",
				"error", err,
				"snapshot_age", time.Since(snap.FetchedAt).Round(time.Second),
			)
			return append([]exchangerate.ExchangeRate(nil), snap.Rates...), nil
		}
		e.logger.Errorw("rate refresh failed and no cached rates exist", "error", err)
		return nil, err
	}

	rates := v.([]exchangerate.ExchangeRate)
	if shared {
		rates = append([]exchangerate.ExchangeRate(nil), rates...)
	}
	return rates, nil
}

// CachedRates is the read path used by request handlers.
func (e *RateEngine) CachedRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	return e.FetchLatestRates(ctx)
}

// Refresh rebuilds the snapshot regardless of its age. A failed refresh
// leaves the current snapshot in place for stale fallback.
func (e *RateEngine) Refresh(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	v, err, _ := e.group.Do(refreshKey, func() (interface{}, error) {
		return e.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return append([]exchangerate.ExchangeRate(nil), v.([]exchangerate.ExchangeRate)...), nil
}

// Ready reports whether rates can be served. Any snapshot, fresh or stale,
// is enough and costs no upstream call. Without one, a single shared refresh
// must succeed.
func (e *RateEngine) Ready(ctx context.Context) error {
	snap, _, err := e.cache.Load(ctx)
	if err == nil && snap != nil {
		return nil
	}
	_, err = e.FetchLatestRates(ctx)
	return err
}

// Invalidate drops the snapshot so the next read refreshes.
func (e *RateEngine) Invalidate(ctx context.Context) error {
	if err := e.cache.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear rate snapshot: %w", err)
	}
	return nil
}

func (e *RateEngine) refresh(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	start := time.Now()

	var (
		quotes  *SpotQuotes
		markups []*exchangerate.Markup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := e.market.FetchSpotPrices(gctx)
		if err != nil {
			return err
		}
		quotes = q
		return nil
	})
	g.Go(func() error {
		m, err := e.markups.ListActive(gctx)
		if err != nil {
			e.logger.Warnw("failed to load markups, using defaults", "error", err)
			return nil
		}
		markups = m
		return nil
	})
	if err := g.Wait(); err != nil {
		e.metrics.RefreshCompleted(e.market.Name(), err, time.Since(start))
		return nil, err
	}

	rates, err := e.buildRates(quotes, markups)
	if err != nil {
		e.metrics.RefreshCompleted(e.market.Name(), err, time.Since(start))
		return nil, err
	}

	if _, err := e.cache.Save(ctx, rates); err != nil {
		e.logger.Warnw("failed to store rate snapshot", "error", err)
	}

	e.metrics.RefreshCompleted(e.market.Name(), nil, time.Since(start))
	e.logger.Infow("exchange rates refreshed",
		"source", e.market.Name(),
		"pairs", len(rates),
		"custom_markups", len(markups),
	)
	return rates, nil
}

func (e *RateEngine) buildRates(quotes *SpotQuotes, markups []*exchangerate.Markup) ([]exchangerate.ExchangeRate, error) {
	if quotes == nil {
		return nil, exchangerate.ErrUpstreamUnavailable
	}

	byPair := make(map[string]*exchangerate.Markup, len(markups))
	for _, m := range markups {
		byPair[m.Pair()] = m
	}

	rates := make([]exchangerate.ExchangeRate, 0, len(exchangerate.SupportedBases))
	for _, base := range exchangerate.SupportedBases {
		q, ok := quotes.Quotes[base]
		if !ok || !(q.PriceToman > 0) {
			return nil, &exchangerate.MissingRateError{Currency: base}
		}

		buy, sell := e.defaults.Buy, e.defaults.Sell
		if m, ok := byPair[exchangerate.NewPair(base, exchangerate.QuoteCurrency)]; ok {
			buy, sell = m.BuyMarkup(), m.SellMarkup()
		}

		rates = append(rates, exchangerate.NewExchangeRate(
			base,
			exchangerate.QuoteCurrency,
			q.PriceToman*TomanToRial,
			buy,
			sell,
			q.Change,
		))
	}
	return rates, nil
}
