package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/avestaexchange/avesta/internal/domain/testimonial"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/mappers"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/models"
)

const testimonialOrder = "created_at DESC, id DESC"

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) testimonial.Repository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *testimonial.Testimonial) error {
	model := mappers.TestimonialToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id uint) (*testimonial.Testimonial, error) {
	var model models.TestimonialModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, testimonial.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return mappers.TestimonialToEntity(&model), nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *testimonial.Testimonial) error {
	model := mappers.TestimonialToModel(t)
	result := r.db.WithContext(ctx).Model(&models.TestimonialModel{}).
		Where("id = ?", model.ID).
		Select("name", "role", "content", "image", "rating", "language", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return testimonial.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TestimonialModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return testimonial.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	var rows []*models.TestimonialModel
	if err := r.db.WithContext(ctx).Order(testimonialOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return mappers.TestimonialsToEntities(rows), nil
}

func (r *TestimonialRepository) ListActiveByLanguage(ctx context.Context, language string) ([]*testimonial.Testimonial, error) {
	var rows []*models.TestimonialModel
	if err := r.db.WithContext(ctx).
		Where("language = ? AND is_active = ?", language, true).
		Order(testimonialOrder).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return mappers.TestimonialsToEntities(rows), nil
}

func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.TestimonialModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count testimonials: %w", err)
	}
	return n, nil
}
