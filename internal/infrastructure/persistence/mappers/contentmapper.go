package mappers

import (
	"github.com/avestaexchange/avesta/internal/domain/faq"
	"github.com/avestaexchange/avesta/internal/domain/testimonial"
	"github.com/avestaexchange/avesta/internal/infrastructure/persistence/models"
)

func FAQToEntity(model *models.FAQModel) *faq.FAQ {
	return faq.ReconstructFAQ(model.ID, faq.Content{
		Question: model.Question,
		Answer:   model.Answer,
		Category: model.Category,
		Language: model.Language,
		Order:    model.SortOrder,
	}, model.IsActive, model.CreatedAt, model.UpdatedAt)
}

func FAQToModel(entity *faq.FAQ) *models.FAQModel {
	return &models.FAQModel{
		ID:        entity.ID(),
		Question:  entity.Question(),
		Answer:    entity.Answer(),
		Category:  entity.Category(),
		Language:  entity.Language(),
		SortOrder: entity.Order(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func FAQsToEntities(rows []*models.FAQModel) []*faq.FAQ {
	out := make([]*faq.FAQ, 0, len(rows))
	for _, row := range rows {
		out = append(out, FAQToEntity(row))
	}
	return out
}

func TestimonialToEntity(model *models.TestimonialModel) *testimonial.Testimonial {
	return testimonial.ReconstructTestimonial(model.ID, testimonial.Details{
		Name:     model.Name,
		Role:     model.Role,
		Content:  model.Content,
		Image:    model.Image,
		Rating:   model.Rating,
		Language: model.Language,
	}, model.IsActive, model.CreatedAt, model.UpdatedAt)
}

func TestimonialToModel(entity *testimonial.Testimonial) *models.TestimonialModel {
	return &models.TestimonialModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Role:      entity.Role(),
		Content:   entity.Content(),
		Image:     entity.Image(),
		Rating:    entity.Rating(),
		Language:  entity.Language(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func TestimonialsToEntities(rows []*models.TestimonialModel) []*testimonial.Testimonial {
	out := make([]*testimonial.Testimonial, 0, len(rows))
	for _, row := range rows {
		out = append(out, TestimonialToEntity(row))
	}
	return out
}
