package exchangerate

import (
	"context"
	"sync"
	"time"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

type mockMarket struct {
	fetchFunc func(ctx context.Context) (*SpotQuotes, error)
}

func (m *mockMarket) FetchSpotPrices(ctx context.Context) (*SpotQuotes, error) {
	return m.fetchFunc(ctx)
}

func (m *mockMarket) Name() string { return "mock" }

type mockMarkupRepo struct {
	upsertFunc      func(ctx context.Context, m *exchangerate.Markup) error
	getByIDFunc     func(ctx context.Context, id uint) (*exchangerate.Markup, error)
	getByPairFunc   func(ctx context.Context, pair string) (*exchangerate.Markup, error)
	listActiveFunc  func(ctx context.Context) ([]*exchangerate.Markup, error)
	updateFunc      func(ctx context.Context, m *exchangerate.Markup) error
	countActiveFunc func(ctx context.Context) (int64, error)
}

func (r *mockMarkupRepo) Upsert(ctx context.Context, m *exchangerate.Markup) error {
	if r.upsertFunc != nil {
		return r.upsertFunc(ctx, m)
	}
	return nil
}

func (r *mockMarkupRepo) GetByID(ctx context.Context, id uint) (*exchangerate.Markup, error) {
	if r.getByIDFunc != nil {
		return r.getByIDFunc(ctx, id)
	}
	return nil, exchangerate.ErrMarkupNotFound
}

func (r *mockMarkupRepo) GetByPair(ctx context.Context, pair string) (*exchangerate.Markup, error) {
	if r.getByPairFunc != nil {
		return r.getByPairFunc(ctx, pair)
	}
	return nil, exchangerate.ErrMarkupNotFound
}

func (r *mockMarkupRepo) ListActive(ctx context.Context) ([]*exchangerate.Markup, error) {
	if r.listActiveFunc != nil {
		return r.listActiveFunc(ctx)
	}
	return nil, nil
}

func (r *mockMarkupRepo) Update(ctx context.Context, m *exchangerate.Markup) error {
	if r.updateFunc != nil {
		return r.updateFunc(ctx, m)
	}
	return nil
}

func (r *mockMarkupRepo) CountActive(ctx context.Context) (int64, error) {
	if r.countActiveFunc != nil {
		return r.countActiveFunc(ctx)
	}
	return 0, nil
}

// memoryStore is a minimal SnapshotStore for tests.
type memoryStore struct {
	mu   sync.Mutex
	snap *RateSnapshot
}

func (s *memoryStore) Load(context.Context) (*RateSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, nil
}

func (s *memoryStore) Save(_ context.Context, snap *RateSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}

func (s *memoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	return nil
}

type mockRateSource struct {
	fetchFunc      func(ctx context.Context) ([]exchangerate.ExchangeRate, error)
	invalidateFunc func(ctx context.Context) error
}

func (m *mockRateSource) FetchLatestRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	return m.fetchFunc(ctx)
}

func (m *mockRateSource) Invalidate(ctx context.Context) error {
	if m.invalidateFunc != nil {
		return m.invalidateFunc(ctx)
	}
	return nil
}

type fixedRandom struct{ v float64 }

func (f fixedRandom) Float64() float64 { return f.v }

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func fullQuotes() *SpotQuotes {
	return &SpotQuotes{
		Quotes: map[exchangerate.Currency]SpotQuote{
			exchangerate.USD: {Currency: exchangerate.USD, PriceToman: 50000, Change: 0},
			exchangerate.EUR: {Currency: exchangerate.EUR, PriceToman: 54000, Change: 0.8},
			exchangerate.GBP: {Currency: exchangerate.GBP, PriceToman: 63000, Change: -0.4},
			exchangerate.AED: {Currency: exchangerate.AED, PriceToman: 13600, Change: 0.1},
		},
		FetchedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}
