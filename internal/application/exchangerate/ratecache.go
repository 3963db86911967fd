package exchangerate

import (
	"context"
	"time"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

const (
	// DefaultCacheTTL is how long a refresh is served before refetching.
	DefaultCacheTTL = 30 * time.Minute

	// DefaultDrift is the largest fractional move applied to a cached base rate per read (0.05%).
	DefaultDrift = exchangerate.MaxDrift
)

// RateCache owns the single rate snapshot and the drift applied to reads
// within its TTL. Stored snapshots are never modified by reads.
type RateCache struct {
	store SnapshotStore
	ttl   time.Duration
	drift float64
	rng   exchangerate.RandomSource
	now   func() time.Time
}

// NewRateCache wires a cache over store. Zero ttl or drift select the defaults;
// nil rng and now select the process random source and wall clock.
func NewRateCache(store SnapshotStore, ttl time.Duration, drift float64, rng exchangerate.RandomSource, now func() time.Time) *RateCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if drift <= 0 {
		drift = DefaultDrift
	}
	if rng == nil {
		rng = exchangerate.DefaultRandomSource
	}
	if now == nil {
		now = time.Now
	}
	return &RateCache{store: store, ttl: ttl, drift: drift, rng: rng, now: now}
}

// Load returns the stored snapshot, if any, and whether it is younger than the TTL.
func (c *RateCache) Load(ctx context.Context) (*RateSnapshot, bool, error) {
	snap, err := c.store.Load(ctx)
	if err != nil || snap == nil {
		return nil, false, err
	}
	return snap, c.now().Sub(snap.FetchedAt) < c.ttl, nil
}

// Save replaces the snapshot with rates stamped at the current time.
func (c *RateCache) Save(ctx context.Context, rates []exchangerate.ExchangeRate) (*RateSnapshot, error) {
	snap := &RateSnapshot{
		FetchedAt: c.now(),
		Rates:     append([]exchangerate.ExchangeRate(nil), rates...),
	}
	if err := c.store.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// Clear drops the snapshot.
func (c *RateCache) Clear(ctx context.Context) error {
	return c.store.Clear(ctx)
}

// TTL returns the freshness window.
func (c *RateCache) TTL() time.Duration {
	return c.ttl
}

// Simulate returns drifted copies of rates: each base rate moves by a uniform
// fraction in [-drift, +drift], buy and sell are recomputed with unchanged
// markups, and the move in percentage points is added to change.
func (c *RateCache) Simulate(rates []exchangerate.ExchangeRate) []exchangerate.ExchangeRate {
	out := make([]exchangerate.ExchangeRate, len(rates))
	for i, r := range rates {
		delta := (c.rng.Float64()*2 - 1) * c.drift
		out[i] = r.WithBaseRate(r.BaseRate()*(1+delta), r.Change()+delta*100)
	}
	return out
}
