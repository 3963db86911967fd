// Package dashboard aggregates back-office counters.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/avestaexchange/avesta/internal/application/exchangerate/dto"
	"github.com/avestaexchange/avesta/internal/shared/errors"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

// Counter reports a record count.
type Counter func(ctx context.Context) (int64, error)

// MetricsUseCase counts users, active markups, testimonials and FAQs concurrently.
type MetricsUseCase struct {
	users        Counter
	markups      Counter
	testimonials Counter
	faqs         Counter
	logger       logger.Interface
}

func NewMetricsUseCase(users, markups, testimonials, faqs Counter, logger logger.Interface) *MetricsUseCase {
	return &MetricsUseCase{
		users:        users,
		markups:      markups,
		testimonials: testimonials,
		faqs:         faqs,
		logger:       logger,
	}
}

func (uc *MetricsUseCase) Execute(ctx context.Context) (*dto.DashboardMetrics, error) {
	var m dto.DashboardMetrics

	g, gctx := errgroup.WithContext(ctx)
	count := func(c Counter, dst *int64) {
		g.Go(func() error {
			n, err := c(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	count(uc.users, &m.TotalUsers)
	count(uc.markups, &m.ActiveExchangeRates)
	count(uc.testimonials, &m.Testimonials)
	count(uc.faqs, &m.FAQs)

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to collect dashboard metrics", "error", err)
		return nil, errors.NewInternalError("Failed to fetch metrics")
	}
	return &m, nil
}
