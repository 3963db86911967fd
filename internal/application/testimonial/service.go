// Package testimonial manages customer testimonials.
package testimonial

import (
	"context"
	stderrors "errors"

	"github.com/avestaexchange/avesta/internal/application/testimonial/dto"
	"github.com/avestaexchange/avesta/internal/domain/testimonial"
	"github.com/avestaexchange/avesta/internal/shared/constants"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

type Service struct {
	repo   testimonial.Repository
	logger logger.Interface
}

func NewService(repo testimonial.Repository, logger logger.Interface) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublic returns active testimonials in lang, newest first.
func (s *Service) ListPublic(ctx context.Context, lang string) ([]*dto.TestimonialResponse, error) {
	if !constants.IsSupportedLanguage(lang) {
		lang = constants.DefaultLanguage
	}
	items, err := s.repo.ListActiveByLanguage(ctx, lang)
	if err != nil {
		s.logger.Errorw("failed to list testimonials", "language", lang, "error", err)
		return nil, errors.NewInternalError("Failed to fetch testimonials")
	}
	return dto.ToTestimonialResponses(items), nil
}

func (s *Service) List(ctx context.Context) ([]*dto.TestimonialResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list testimonials", "error", err)
		return nil, errors.NewInternalError("Failed to fetch testimonials")
	}
	return dto.ToTestimonialResponses(items), nil
}

func (s *Service) Create(ctx context.Context, req dto.TestimonialRequest) (*dto.TestimonialResponse, error) {
	t, err := testimonial.NewTestimonial(req.Details())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := t.Update(req.Details(), false); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Errorw("failed to create testimonial", "error", err)
		return nil, errors.NewInternalError("Failed to create testimonial")
	}
	s.logger.Infow("testimonial created", "testimonial_id", t.ID())
	return dto.ToTestimonialResponse(t), nil
}

func (s *Service) Update(ctx context.Context, id uint, req dto.TestimonialRequest) (*dto.TestimonialResponse, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "Failed to update testimonial")
	}

	active := t.IsActive()
	if req.IsActive != nil {
		active = *req.IsActive
	}
	if err := t.Update(req.Details(), active); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, s.translate(err, "Failed to update testimonial")
	}
	return dto.ToTestimonialResponse(t), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, "Failed to delete testimonial")
	}
	s.logger.Infow("testimonial deleted", "testimonial_id", id)
	return nil
}

func (s *Service) translate(err error, msg string) error {
	if stderrors.Is(err, testimonial.ErrTestimonialNotFound) {
		return errors.NewNotFoundError("Testimonial not found")
	}
	s.logger.Errorw(msg, "error", err)
	return errors.NewInternalError(msg)
}
