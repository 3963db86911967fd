package exchangerate

import (
	"time"

	"github.com/avestaexchange/avesta/internal/shared/biztime"
)

// Markup is the persisted operator markup for one pair.
// The pair key is derived from the two currencies and is unique.
type Markup struct {
	id         uint
	base       Currency
	quote      Currency
	baseRate   float64
	buyMarkup  float64
	sellMarkup float64
	buyRate    float64
	sellRate   float64
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewMarkup creates an active markup with rates computed from baseRate.
func NewMarkup(base, quote Currency, buyMarkup, sellMarkup, baseRate float64) (*Markup, error) {
	if err := validateMarkups(buyMarkup, sellMarkup); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	m := &Markup{
		base:      base,
		quote:     quote,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
	m.reprice(baseRate, buyMarkup, sellMarkup)
	return m, nil
}

// ReconstructMarkup rebuilds a Markup from persistence.
func ReconstructMarkup(
	id uint,
	base, quote Currency,
	baseRate, buyMarkup, sellMarkup, buyRate, sellRate float64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Markup {
	return &Markup{
		id:         id,
		base:       base,
		quote:      quote,
		baseRate:   baseRate,
		buyMarkup:  buyMarkup,
		sellMarkup: sellMarkup,
		buyRate:    buyRate,
		sellRate:   sellRate,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Deactivate soft-disables the markup so the engine falls back to defaults.
func (m *Markup) Deactivate() {
	if !m.isActive {
		return
	}
	m.isActive = false
	m.updatedAt = biztime.NowUTC()
}

func (m *Markup) reprice(baseRate, buyMarkup, sellMarkup float64) {
	m.baseRate = baseRate
	m.buyMarkup = buyMarkup
	m.sellMarkup = sellMarkup
	m.buyRate = ApplyMarkup(baseRate, buyMarkup)
	m.sellRate = ApplyMarkup(baseRate, sellMarkup)
}

func validateMarkups(buyMarkup, sellMarkup float64) error {
	if err := ValidateMarkupValue(buyMarkup); err != nil {
		return err
	}
	return ValidateMarkupValue(sellMarkup)
}

func (m *Markup) ID() uint { return m.id }
func (m *Markup) SetID(id uint) { m.id = id }
func (m *Markup) Pair() string { return NewPair(m.base, m.quote) }
func (m *Markup) BaseCurrency() Currency { return m.base }
func (m *Markup) QuoteCurrency() Currency { return m.quote }
func (m *Markup) BaseRate() float64 { return m.baseRate }
func (m *Markup) BuyMarkup() float64 { return m.buyMarkup }
func (m *Markup) SellMarkup() float64 { return m.sellMarkup }
func (m *Markup) BuyRate() float64 { return m.buyRate }
func (m *Markup) SellRate() float64 { return m.sellRate }
func (m *Markup) IsActive() bool { return m.isActive }
func (m *Markup) CreatedAt() time.Time { return m.createdAt }
func (m *Markup) UpdatedAt() time.Time { return m.updatedAt }
