package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/mappers"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/models"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

// upsertColumns are overwritten when a pair already exists. created_at is kept.
var upsertColumns = []string{
	"base_currency", "quote_currency", "base_rate",
	"buy_markup", "sell_markup", "buy_rate", "sell_rate",
	"is_active", "updated_at",
}

// MarkupRepository stores markups in the markups table, unique on pair.
type MarkupRepository struct {
	db     *gorm.DB
	mapper mappers.MarkupMapper
	logger logger.Interface
}

func NewMarkupRepository(db *gorm.DB, logger logger.Interface) exchangerate.MarkupRepository {
	return &MarkupRepository{
		db:     db,
		mapper: mappers.NewMarkupMapper(),
		logger: logger,
	}
}

// Upsert writes the markup with a single INSERT .. ON CONFLICT(pair) statement,
// so concurrent admin writes for one pair never produce duplicate rows.
func (r *MarkupRepository) Upsert(ctx context.Context, markup *exchangerate.Markup) error {
	model := r.mapper.ToModel(markup)
	model.ID = 0

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pair"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert markup", "pair", model.Pair, "error", err)
		return fmt.Errorf("failed to upsert markup: %w", err)
	}

	// The driver-reported insert id is unreliable on the update branch.
	var id uint
	if err := r.db.WithContext(ctx).Model(&models.MarkupModel{}).
		Where("pair = ?", model.Pair).
		Pluck("id", &id).Error; err != nil {
		return fmt.Errorf("failed to read markup id: %w", err)
	}
	markup.SetID(id)

	r.logger.Infow("markup saved", "id", id, "pair", model.Pair)
	return nil
}

func (r *MarkupRepository) GetByID(ctx context.Context, id uint) (*exchangerate.Markup, error) {
	var model models.MarkupModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exchangerate.ErrMarkupNotFound
		}
		return nil, fmt.Errorf("failed to get markup: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MarkupRepository) GetByPair(ctx context.Context, pair string) (*exchangerate.Markup, error) {
	var model models.MarkupModel
	if err := r.db.WithContext(ctx).Where("pair = ?", pair).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exchangerate.ErrMarkupNotFound
		}
		return nil, fmt.Errorf("failed to get markup: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MarkupRepository) ListActive(ctx context.Context) ([]*exchangerate.Markup, error) {
	var rows []*models.MarkupModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("base_currency ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list markups: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *MarkupRepository) Update(ctx context.Context, markup *exchangerate.Markup) error {
	model := r.mapper.ToModel(markup)
	result := r.db.WithContext(ctx).Model(&models.MarkupModel{}).
		Where("id = ?", model.ID).
		Select(upsertColumns).
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update markup", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update markup: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return exchangerate.ErrMarkupNotFound
	}
	return nil
}

func (r *MarkupRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.MarkupModel{}).
		Where("is_active = ?", true).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count markups: %w", err)
	}
	return n, nil
}
