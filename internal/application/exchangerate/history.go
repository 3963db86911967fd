package exchangerate

import (
	"context"
	"fmt"
	"time"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

// HistoryUseCase synthesizes a chart series for a pair's current rate.
type HistoryUseCase struct {
	rates       RateSource
	synthesizer *exchangerate.SeriesSynthesizer
	now         func() time.Time
}

func NewHistoryUseCase(rates RateSource, synthesizer *exchangerate.SeriesSynthesizer, now func() time.Time) *HistoryUseCase {
	if now == nil {
		now = time.Now
	}
	return &HistoryUseCase{rates: rates, synthesizer: synthesizer, now: now}
}

// Execute validates period before touching rates, then fails with
// ErrPairNotFound if pair has no current rate.
func (uc *HistoryUseCase) Execute(ctx context.Context, pair, period string) ([]exchangerate.HistoricalPoint, error) {
	p, err := exchangerate.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	rates, err := uc.rates.FetchLatestRates(ctx)
	if err != nil {
		return nil, err
	}

	current, ok := exchangerate.FindRate(rates, pair)
	if !ok {
		return nil, fmt.Errorf("%w: %s", exchangerate.ErrPairNotFound, pair)
	}

	return uc.synthesizer.Synthesize(current, p, uc.now()), nil
}
