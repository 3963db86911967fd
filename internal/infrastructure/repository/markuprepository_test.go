package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/models"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

func newMarkup(t *testing.T, base exchangerate.Currency, buy, sell, rate float64) *exchangerate.Markup {
	t.Helper()
	m, err := exchangerate.NewMarkup(base, exchangerate.IRR, buy, sell, rate)
	require.NoError(t, err)
	return m
}

func TestMarkupRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMarkupRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	t.Run("insert then update keeps one row per pair", func(t *testing.T) {
		first := newMarkup(t, exchangerate.USD, 1.5, 1.0, 500000)
		require.NoError(t, repo.Upsert(ctx, first))
		assert.NotZero(t, first.ID())

		second := newMarkup(t, exchangerate.USD, 3.0, 2.0, 510000)
		require.NoError(t, repo.Upsert(ctx, second))
		assert.Equal(t, first.ID(), second.ID())

		var count int64
		require.NoError(t, db.Model(&models.MarkupModel{}).Where("pair = ?", "USD/IRR").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		got, err := repo.GetByPair(ctx, "USD/IRR")
		require.NoError(t, err)
		assert.Equal(t, 3.0, got.BuyMarkup())
		assert.Equal(t, 2.0, got.SellMarkup())
		assert.Equal(t, 510000.0, got.BaseRate())
	})

	t.Run("upsert reactivates a deactivated pair", func(t *testing.T) {
		m := newMarkup(t, exchangerate.EUR, 1, 1, 540000)
		require.NoError(t, repo.Upsert(ctx, m))
		m.Deactivate()
		require.NoError(t, repo.Update(ctx, m))

		got, err := repo.GetByID(ctx, m.ID())
		require.NoError(t, err)
		assert.False(t, got.IsActive())

		require.NoError(t, repo.Upsert(ctx, newMarkup(t, exchangerate.EUR, 2, 1, 540000)))
		got, err = repo.GetByID(ctx, m.ID())
		require.NoError(t, err)
		assert.True(t, got.IsActive())
	})
}

func TestMarkupRepository_ConcurrentUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMarkupRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := exchangerate.NewMarkup(exchangerate.GBP, exchangerate.IRR, float64(i), 1, 630000)
			if err == nil {
				_ = repo.Upsert(ctx, m)
			}
		}(i)
	}
	wg.Wait()

	var count int64
	require.NoError(t, db.Model(&models.MarkupModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMarkupRepository_ListActiveAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMarkupRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	for _, c := range []exchangerate.Currency{exchangerate.USD, exchangerate.AED, exchangerate.GBP} {
		require.NoError(t, repo.Upsert(ctx, newMarkup(t, c, 1, 1, 100000)))
	}
	gbp, err := repo.GetByPair(ctx, "GBP/IRR")
	require.NoError(t, err)
	gbp.Deactivate()
	require.NoError(t, repo.Update(ctx, gbp))

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, exchangerate.AED, list[0].BaseCurrency())
	assert.Equal(t, exchangerate.USD, list[1].BaseCurrency())

	n, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMarkupRepository_NotFound(t *testing.T) {
	repo := NewMarkupRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, exchangerate.ErrMarkupNotFound)

	_, err = repo.GetByPair(ctx, "USD/IRR")
	assert.ErrorIs(t, err, exchangerate.ErrMarkupNotFound)

	m := newMarkup(t, exchangerate.USD, 1, 1, 1)
	m.SetID(42)
	assert.ErrorIs(t, repo.Update(ctx, m), exchangerate.ErrMarkupNotFound)
}
