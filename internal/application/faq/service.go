// Package faq manages the FAQ entries shown on the public site.
package faq

import (
	"context"
	stderrors "errors"

	"github.com/avestaexchange/avesta/internal/application/faq/dto"
	"github.com/avestaexchange/avesta/internal/domain/faq"
	"github.com/avestaexchange/avesta/internal/shared/constants"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/services/markdown"
)

type Service struct {
	repo     faq.Repository
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewService(repo faq.Repository, renderer markdown.Renderer, logger logger.Interface) *Service {
	return &Service{repo: repo, renderer: renderer, logger: logger}
}

// ListPublic returns active FAQs in lang with answers rendered to HTML.
// Unknown languages fall back to English.
func (s *Service) ListPublic(ctx context.Context, lang string) ([]*dto.FAQResponse, error) {
	if !constants.IsSupportedLanguage(lang) {
		lang = constants.DefaultLanguage
	}

	faqs, err := s.repo.ListActiveByLanguage(ctx, lang)
	if err != nil {
		s.logger.Errorw("failed to list faqs", "language", lang, "error", err)
		return nil, errors.NewInternalError("Failed to fetch FAQs")
	}

	out := make([]*dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		resp := dto.ToFAQResponse(f)
		html, err := s.renderer.Render(f.Answer())
		if err != nil {
			s.logger.Warnw("failed to render faq answer", "faq_id", f.ID(), "error", err)
		} else {
			resp.AnswerHTML = html
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *Service) List(ctx context.Context) ([]*dto.FAQResponse, error) {
	faqs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list faqs", "error", err)
		return nil, errors.NewInternalError("Failed to fetch FAQs")
	}
	out := make([]*dto.FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, dto.ToFAQResponse(f))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req dto.FAQRequest) (*dto.FAQResponse, error) {
	f, err := faq.NewFAQ(req.Content())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := f.Update(req.Content(), false); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Errorw("failed to create faq", "error", err)
		return nil, errors.NewInternalError("Failed to create FAQ")
	}
	s.logger.Infow("faq created", "faq_id", f.ID(), "language", f.Language())
	return dto.ToFAQResponse(f), nil
}

// Update replaces an FAQ. A missing isActive keeps the current visibility.
func (s *Service) Update(ctx context.Context, id uint, req dto.FAQRequest) (*dto.FAQResponse, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err, "Failed to update FAQ")
	}

	active := f.IsActive()
	if req.IsActive != nil {
		active = *req.IsActive
	}
	if err := f.Update(req.Content(), active); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, s.translate(err, "Failed to update FAQ")
	}
	return dto.ToFAQResponse(f), nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, "Failed to delete FAQ")
	}
	s.logger.Infow("faq deleted", "faq_id", id)
	return nil
}

func (s *Service) translate(err error, msg string) error {
	if stderrors.Is(err, faq.ErrFAQNotFound) {
		return errors.NewNotFoundError("FAQ not found")
	}
	s.logger.Errorw(msg, "error", err)
	return errors.NewInternalError(msg)
}
