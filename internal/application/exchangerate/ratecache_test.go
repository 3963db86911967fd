package exchangerate

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

func TestRateCache_LoadFreshness(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewRateCache(&memoryStore{}, 30*time.Minute, 0, nil, clock.Now)
	ctx := context.Background()

	snap, fresh, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
	assert.False(t, fresh)

	_, err = cache.Save(ctx, []exchangerate.ExchangeRate{exchangerate.NewExchangeRate(exchangerate.USD, exchangerate.IRR, 500000, 1.5, 1, 0)})
	require.NoError(t, err)

	clock.Advance(29 * time.Minute)
	_, fresh, _ = cache.Load(ctx)
	assert.True(t, fresh)

	clock.Advance(time.Minute)
	snap, fresh, _ = cache.Load(ctx)
	assert.False(t, fresh)
	assert.NotNil(t, snap, "expired snapshot is kept for fallback")

	require.NoError(t, cache.Clear(ctx))
	snap, _, _ = cache.Load(ctx)
	assert.Nil(t, snap)
}

func TestRateCache_SimulateStaysWithinBounds(t *testing.T) {
	cache := NewRateCache(&memoryStore{}, 0, 0, nil, nil)
	rates := []exchangerate.ExchangeRate{
		exchangerate.NewExchangeRate(exchangerate.USD, exchangerate.IRR, 500000, 1.5, 1, 0.2),
		exchangerate.NewExchangeRate(exchangerate.AED, exchangerate.IRR, 136000, 0, 100, -1.1),
	}

	for i := 0; i < 1000; i++ {
		out := cache.Simulate(rates)
		require.Len(t, out, len(rates))
		for j, r := range out {
			orig := rates[j]
			move := r.BaseRate()/orig.BaseRate() - 1
			assert.LessOrEqual(t, math.Abs(move), DefaultDrift+1e-12)
			assert.LessOrEqual(t, math.Abs(r.Change()-orig.Change()), DefaultDrift*100+1e-9)
			assert.InDelta(t, r.BaseRate()*(1+r.BuyMarkup()/100), r.BuyRate(), 1e-6)
			assert.InDelta(t, r.BaseRate()*(1+r.SellMarkup()/100), r.SellRate(), 1e-6)
			assert.Equal(t, orig.BuyMarkup(), r.BuyMarkup())
		}
	}

	// inputs untouched
	assert.Equal(t, 500000.0, rates[0].BaseRate())
}

func TestRateCache_SimulateExtremes(t *testing.T) {
	rate := []exchangerate.ExchangeRate{exchangerate.NewExchangeRate(exchangerate.USD, exchangerate.IRR, 1000000, 0, 0, 0)}

	low := NewRateCache(&memoryStore{}, 0, 0, fixedRandom{v: 0}, nil).Simulate(rate)
	assert.InDelta(t, 999500, low[0].BaseRate(), 1e-6)
	assert.InDelta(t, -0.05, low[0].Change(), 1e-9)

	mid := NewRateCache(&memoryStore{}, 0, 0, fixedRandom{v: 0.5}, nil).Simulate(rate)
	assert.Equal(t, 1000000.0, mid[0].BaseRate())
}
