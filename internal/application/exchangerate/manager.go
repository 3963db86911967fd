package exchangerate

import (
	"context"
	"fmt"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

// RateSource serves current rates and can drop its cached copy.
type RateSource interface {
	FetchLatestRates(ctx context.Context) ([]exchangerate.ExchangeRate, error)
	Invalidate(ctx context.Context) error
}

// SetMarkupCommand sets a pair's markups. A nil BaseRate stores zero rates.
type SetMarkupCommand struct {
	BaseCurrency  string
	QuoteCurrency string
	BuyMarkup     float64
	SellMarkup    float64
	BaseRate      *float64
}

// RateManager validates and persists operator markups. Markup writes never
// touch the rate cache; the next refresh picks them up.
type RateManager struct {
	repo     exchangerate.MarkupRepository
	rates    RateSource
	defaults DefaultMarkups
	logger   logger.Interface
}

func NewRateManager(repo exchangerate.MarkupRepository, rates RateSource, defaults DefaultMarkups, logger logger.Interface) *RateManager {
	return &RateManager{repo: repo, rates: rates, defaults: defaults, logger: logger}
}

// SetExchangeRateMarkup creates or updates the markup for the command's pair.
func (m *RateManager) SetExchangeRateMarkup(ctx context.Context, cmd SetMarkupCommand) (*exchangerate.Markup, error) {
	if err := exchangerate.ValidateMarkupValue(cmd.BuyMarkup); err != nil {
		return nil, err
	}
	if err := exchangerate.ValidateMarkupValue(cmd.SellMarkup); err != nil {
		return nil, err
	}

	base, err := exchangerate.ParseCurrency(cmd.BaseCurrency)
	if err != nil {
		return nil, err
	}
	quote, err := exchangerate.ParseCurrency(cmd.QuoteCurrency)
	if err != nil {
		return nil, err
	}

	var baseRate float64
	if cmd.BaseRate != nil {
		baseRate = *cmd.BaseRate
	}

	markup, err := exchangerate.NewMarkup(base, quote, cmd.BuyMarkup, cmd.SellMarkup, baseRate)
	if err != nil {
		return nil, err
	}

	if err := m.repo.Upsert(ctx, markup); err != nil {
		m.logger.Errorw("failed to save markup", "pair", markup.Pair(), "error", err)
		return nil, fmt.Errorf("failed to save markup: %w", err)
	}

	saved, err := m.repo.GetByPair(ctx, markup.Pair())
	if err != nil {
		return nil, fmt.Errorf("failed to reload markup: %w", err)
	}

	m.logger.Infow("markup saved",
		"pair", saved.Pair(),
		"buy_markup", saved.BuyMarkup(),
		"sell_markup", saved.SellMarkup(),
		"base_rate", saved.BaseRate(),
	)
	return saved, nil
}

// SetMarkupFromLiveRate stores the markup against the pair's current base rate.
// It fails with ErrPairNotFound when the market has no quote for the pair.
func (m *RateManager) SetMarkupFromLiveRate(ctx context.Context, cmd SetMarkupCommand) (*exchangerate.Markup, error) {
	base, err := exchangerate.ParseCurrency(cmd.BaseCurrency)
	if err != nil {
		return nil, err
	}
	quote, err := exchangerate.ParseCurrency(cmd.QuoteCurrency)
	if err != nil {
		return nil, err
	}

	rates, err := m.rates.FetchLatestRates(ctx)
	if err != nil {
		return nil, err
	}
	live, ok := exchangerate.FindRate(rates, exchangerate.NewPair(base, quote))
	if !ok {
		return nil, fmt.Errorf("%w: %s", exchangerate.ErrPairNotFound, exchangerate.NewPair(base, quote))
	}

	baseRate := live.BaseRate()
	cmd.BaseRate = &baseRate
	return m.SetExchangeRateMarkup(ctx, cmd)
}

// GetExchangeRateMarkups returns active markups ordered by base currency.
func (m *RateManager) GetExchangeRateMarkups(ctx context.Context) ([]*exchangerate.Markup, error) {
	markups, err := m.repo.ListActive(ctx)
	if err != nil {
		m.logger.Errorw("failed to list markups", "error", err)
		return nil, fmt.Errorf("failed to list markups: %w", err)
	}
	return markups, nil
}

// MergedRates returns live rates repriced with the currently saved markups.
// Pairs without an active markup get the defaults, so a deactivation shows
// before the next refresh.
func (m *RateManager) MergedRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	rates, err := m.rates.FetchLatestRates(ctx)
	if err != nil {
		return nil, err
	}

	markups, err := m.GetExchangeRateMarkups(ctx)
	if err != nil {
		return nil, err
	}
	byPair := make(map[string]*exchangerate.Markup, len(markups))
	for _, mk := range markups {
		byPair[mk.Pair()] = mk
	}

	merged := make([]exchangerate.ExchangeRate, len(rates))
	for i, r := range rates {
		if mk, ok := byPair[r.Pair()]; ok {
			r = r.WithMarkups(mk.BuyMarkup(), mk.SellMarkup())
		} else {
			r = r.WithMarkups(m.defaults.Buy, m.defaults.Sell)
		}
		merged[i] = r
	}
	return merged, nil
}

// DeactivateMarkup soft-disables a markup record.
func (m *RateManager) DeactivateMarkup(ctx context.Context, id uint) error {
	markup, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	markup.Deactivate()
	if err := m.repo.Update(ctx, markup); err != nil {
		m.logger.Errorw("failed to deactivate markup", "id", id, "error", err)
		return fmt.Errorf("failed to deactivate markup: %w", err)
	}

	m.logger.Infow("markup deactivated", "id", id, "pair", markup.Pair())
	return nil
}

// RefreshRates drops the cached snapshot and refetches.
func (m *RateManager) RefreshRates(ctx context.Context) ([]exchangerate.ExchangeRate, error) {
	if err := m.rates.Invalidate(ctx); err != nil {
		return nil, err
	}
	return m.rates.FetchLatestRates(ctx)
}
