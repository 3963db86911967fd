package exchangerate

// ExchangeRate is a quoted pair with operator markups applied.
// Buy and sell rates are derived from the base rate on every construction
// and cannot be set independently.
type ExchangeRate struct {
	base       Currency
	quote      Currency
	baseRate   float64
	buyMarkup  float64
	sellMarkup float64
	buyRate    float64
	sellRate   float64
	change     float64
}

// DefaultBuyMarkup and DefaultSellMarkup apply to pairs without an operator markup.
const (
	DefaultBuyMarkup  = 1.5
	DefaultSellMarkup = 1.0
)

// ApplyMarkup returns baseRate increased by markup percent.
func ApplyMarkup(baseRate, markup float64) float64 {
	return baseRate * (1 + markup/100)
}

// NewExchangeRate builds a rate, computing buy and sell from baseRate and the markups.
func NewExchangeRate(base, quote Currency, baseRate, buyMarkup, sellMarkup, change float64) ExchangeRate {
	return ExchangeRate{
		base:       base,
		quote:      quote,
		baseRate:   baseRate,
		buyMarkup:  buyMarkup,
		sellMarkup: sellMarkup,
		buyRate:    ApplyMarkup(baseRate, buyMarkup),
		sellRate:   ApplyMarkup(baseRate, sellMarkup),
		change:     change,
	}
}

// WithBaseRate returns a copy moved to baseRate with the given change, markups unchanged.
func (r ExchangeRate) WithBaseRate(baseRate, change float64) ExchangeRate {
	return NewExchangeRate(r.base, r.quote, baseRate, r.buyMarkup, r.sellMarkup, change)
}

// WithMarkups returns a copy repriced with new markups.
func (r ExchangeRate) WithMarkups(buyMarkup, sellMarkup float64) ExchangeRate {
	return NewExchangeRate(r.base, r.quote, r.baseRate, buyMarkup, sellMarkup, r.change)
}

func (r ExchangeRate) Pair() string { return NewPair(r.base, r.quote) }
func (r ExchangeRate) BaseCurrency() Currency { return r.base }
func (r ExchangeRate) QuoteCurrency() Currency { return r.quote }
func (r ExchangeRate) BaseRate() float64 { return r.baseRate }
func (r ExchangeRate) BuyMarkup() float64 { return r.buyMarkup }
func (r ExchangeRate) SellMarkup() float64 { return r.sellMarkup }
func (r ExchangeRate) BuyRate() float64 { return r.buyRate }
func (r ExchangeRate) SellRate() float64 { return r.sellRate }
func (r ExchangeRate) Change() float64 { return r.change }

// RateFor returns the buy rate when isBuy is set, otherwise the sell rate.
func (r ExchangeRate) RateFor(isBuy bool) float64 {
	if isBuy {
		return r.buyRate
	}
	return r.sellRate
}

// FindRate returns the rate for pair, if present.
func FindRate(rates []ExchangeRate, pair string) (ExchangeRate, bool) {
	for _, r := range rates {
		if r.Pair() == pair {
			return r, true
		}
	}
	return ExchangeRate{}, false
}
