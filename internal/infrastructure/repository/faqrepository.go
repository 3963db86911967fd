package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/avestaexchange/avesta/internal/domain/faq"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/mappers"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/models"
)

const faqOrder = "sort_order ASC, created_at DESC, id DESC"

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) faq.Repository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, f *faq.FAQ) error {
	model := mappers.FAQToModel(f)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}
	f.SetID(model.ID)
	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, id uint) (*faq.FAQ, error) {
	var model models.FAQModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faq.ErrFAQNotFound
		}
		return nil, fmt.Errorf("failed to get faq: %w", err)
	}
	return mappers.FAQToEntity(&model), nil
}

func (r *FAQRepository) Update(ctx context.Context, f *faq.FAQ) error {
	model := mappers.FAQToModel(f)
	result := r.db.WithContext(ctx).Model(&models.FAQModel{}).
		Where("id = ?", model.ID).
		Select("question", "answer", "category", "language", "sort_order", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return faq.ErrFAQNotFound
	}
	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FAQModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return faq.ErrFAQNotFound
	}
	return nil
}

func (r *FAQRepository) List(ctx context.Context) ([]*faq.FAQ, error) {
	var rows []*models.FAQModel
	if err := r.db.WithContext(ctx).Order(faqOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return mappers.FAQsToEntities(rows), nil
}

func (r *FAQRepository) ListActiveByLanguage(ctx context.Context, language string) ([]*faq.FAQ, error) {
	var rows []*models.FAQModel
	if err := r.db.WithContext(ctx).
		Where("language = ? AND is_active = ?", language, true).
		Order(faqOrder).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return mappers.FAQsToEntities(rows), nil
}

func (r *FAQRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.FAQModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count faqs: %w", err)
	}
	return n, nil
}
