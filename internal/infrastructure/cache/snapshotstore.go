package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	appExchangeRate "github.com/avestaexchange/avesta/internal/application/exchangerate"
	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

const (
	// DefaultSnapshotKey is the redis key holding the shared rate snapshot.
	DefaultSnapshotKey = "avesta:rates:snapshot"

	// DefaultSnapshotRetention keeps an expired snapshot around for stale fallback.
	DefaultSnapshotRetention = 24 * time.Hour
)

// MemorySnapshotStore keeps the snapshot in process memory.
type MemorySnapshotStore struct {
	mu       sync.RWMutex
	snapshot *appExchangeRate.RateSnapshot
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Load(_ context.Context) (*appExchangeRate.RateSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, nil
	}
	return copySnapshot(s.snapshot), nil
}

func (s *MemorySnapshotStore) Save(_ context.Context, snapshot *appExchangeRate.RateSnapshot) error {
	s.mu.Lock()
	s.snapshot = copySnapshot(snapshot)
	s.mu.Unlock()
	return nil
}

func (s *MemorySnapshotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.snapshot = nil
	s.mu.Unlock()
	return nil
}

func copySnapshot(in *appExchangeRate.RateSnapshot) *appExchangeRate.RateSnapshot {
	rates := make([]exchangerate.ExchangeRate, len(in.Rates))
	copy(rates, in.Rates)
	return &appExchangeRate.RateSnapshot{FetchedAt: in.FetchedAt, Rates: rates}
}

// snapshotRecord is the JSON form stored in redis. Buy and sell rates are
// derived again on load, so only inputs are persisted.
type snapshotRecord struct {
	FetchedAt time.Time    `json:"fetched_at"`
	Rates     []rateRecord `json:"rates"`
}

type rateRecord struct {
	Base       string  `json:"base"`
	Quote      string  `json:"quote"`
	BaseRate   float64 `json:"base_rate"`
	BuyMarkup  float64 `json:"buy_markup"`
	SellMarkup float64 `json:"sell_markup"`
	Change     float64 `json:"change"`
}

// RedisSnapshotStore shares one snapshot across instances.
type RedisSnapshotStore struct {
	client    *redis.Client
	key       string
	retention time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, key string, retention time.Duration) *RedisSnapshotStore {
	if key == "" {
		key = DefaultSnapshotKey
	}
	if retention <= 0 {
		retention = DefaultSnapshotRetention
	}
	return &RedisSnapshotStore{client: client, key: key, retention: retention}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) (*appExchangeRate.RateSnapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rate snapshot: %w", err)
	}

	var rec snapshotRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode rate snapshot: %w", err)
	}

	rates := make([]exchangerate.ExchangeRate, 0, len(rec.Rates))
	for _, r := range rec.Rates {
		rates = append(rates, exchangerate.NewExchangeRate(
			exchangerate.Currency(r.Base), exchangerate.Currency(r.Quote),
			r.BaseRate, r.BuyMarkup, r.SellMarkup, r.Change,
		))
	}
	return &appExchangeRate.RateSnapshot{FetchedAt: rec.FetchedAt, Rates: rates}, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snapshot *appExchangeRate.RateSnapshot) error {
	rec := snapshotRecord{
		FetchedAt: snapshot.FetchedAt,
		Rates:     make([]rateRecord, 0, len(snapshot.Rates)),
	}
	for _, r := range snapshot.Rates {
		rec.Rates = append(rec.Rates, rateRecord{
			Base:       string(r.BaseCurrency()),
			Quote:      string(r.QuoteCurrency()),
			BaseRate:   r.BaseRate(),
			BuyMarkup:  r.BuyMarkup(),
			SellMarkup: r.SellMarkup(),
			Change:     r.Change(),
		})
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode rate snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, s.retention).Err(); err != nil {
		return fmt.Errorf("failed to store rate snapshot: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear rate snapshot: %w", err)
	}
	return nil
}
