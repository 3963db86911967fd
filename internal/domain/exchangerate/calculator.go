package exchangerate

import "fmt"

// CalculateExchangeAmount converts amount from one currency to another using rates.
//
// Lookup order: the direct pair from/to, then the inverse pair to/from, then a
// cross through the quote currency. isBuy selects the buy side of the direct
// pair; the inverse pair swaps sides.
func CalculateExchangeAmount(amount float64, from, to Currency, rates []ExchangeRate, isBuy bool) (float64, error) {
	if amount == 0 {
		return 0, nil
	}

	if direct, ok := FindRate(rates, NewPair(from, to)); ok {
		return amount * direct.RateFor(isBuy), nil
	}

	if inverse, ok := FindRate(rates, NewPair(to, from)); ok {
		return amount / inverse.RateFor(!isBuy), nil
	}

	fromLeg, fromOK := FindRate(rates, NewPair(from, QuoteCurrency))
	toLeg, toOK := FindRate(rates, NewPair(to, QuoteCurrency))
	if fromOK && toOK {
		inQuote := amount * fromLeg.RateFor(isBuy)
		return inQuote / toLeg.RateFor(!isBuy), nil
	}

	return 0, fmt.Errorf("%w: %s to %s", ErrRateNotFound, from, to)
}
