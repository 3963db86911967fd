package exchangerate

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 currency code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	AED Currency = "AED"
	IRR Currency = "IRR"
)

// QuoteCurrency is the currency every supported pair is quoted in.
const QuoteCurrency = IRR

// SupportedBases lists the base currencies that must be present in every refresh,
// in display order.
var SupportedBases = []Currency{USD, EUR, GBP, AED}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency normalizes and validates a three-letter currency code.
func ParseCurrency(s string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
		}
	}
	return Currency(code), nil
}

// NewPair builds the canonical "BASE/QUOTE" pair key.
func NewPair(base, quote Currency) string {
	return string(base) + "/" + string(quote)
}

// SplitPair parses a "BASE/QUOTE" key back into its currencies.
func SplitPair(pair string) (base, quote Currency, err error) {
	left, right, ok := strings.Cut(pair, "/")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCurrency, pair)
	}
	if base, err = ParseCurrency(left); err != nil {
		return "", "", err
	}
	if quote, err = ParseCurrency(right); err != nil {
		return "", "", err
	}
	return base, quote, nil
}
