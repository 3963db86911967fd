package seed

import (
	"context"
	"fmt"

	faqDTO "github.com/avestaexchange/avesta/internal/application/faq/dto"
	testimonialDTO "github.com/avestaexchange/avesta/internal/application/testimonial/dto"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

type faqCreator interface {
	Create(ctx context.Context, req faqDTO.FAQRequest) (*faqDTO.FAQResponse, error)
}

type testimonialCreator interface {
	Create(ctx context.Context, req testimonialDTO.TestimonialRequest) (*testimonialDTO.TestimonialResponse, error)
}

// seeder loads content into tables that are still empty, so reruns never duplicate rows.
type seeder struct {
	faqs              faqCreator
	testimonials      testimonialCreator
	countFAQs         func(ctx context.Context) (int64, error)
	countTestimonials func(ctx context.Context) (int64, error)
	logger            logger.Interface
}

func (s *seeder) load(ctx context.Context, file *File) error {
	if len(file.FAQs) > 0 {
		n, err := s.countFAQs(ctx)
		if err != nil {
			return fmt.Errorf("failed to count faqs: %w", err)
		}
		if n > 0 {
			s.logger.Infow("faqs already present, skipping", "count", n)
		} else {
			for i, e := range file.FAQs {
				if _, err := s.faqs.Create(ctx, e.Request()); err != nil {
					return fmt.Errorf("faqs[%d]: %w", i, err)
				}
			}
			s.logger.Infow("faqs seeded", "count", len(file.FAQs))
		}
	}

	if len(file.Testimonials) > 0 {
		n, err := s.countTestimonials(ctx)
		if err != nil {
			return fmt.Errorf("failed to count testimonials: %w", err)
		}
		if n > 0 {
			s.logger.Infow("testimonials already present, skipping", "count", n)
			return nil
		}
		for i, e := range file.Testimonials {
			if _, err := s.testimonials.Create(ctx, e.Request()); err != nil {
				return fmt.Errorf("testimonials[%d]: %w", i, err)
			}
		}
		s.logger.Infow("testimonials seeded", "count", len(file.Testimonials))
	}
	return nil
}
