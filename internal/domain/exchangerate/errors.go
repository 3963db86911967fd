package exchangerate

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable is returned when the market feed is unreachable or malformed.
	ErrUpstreamUnavailable = errors.New("market data provider unavailable")

	// ErrMissingRateData is returned when a required currency is absent or invalid in the feed.
	ErrMissingRateData = errors.New("missing rate data")

	// ErrRateNotFound is returned when no conversion path exists between two currencies.
	ErrRateNotFound = errors.New("exchange rate not found")

	// ErrInvalidPeriod is returned for a history period outside 1W, 1M, 3M and 1Y.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrPairNotFound is returned when a pair has no current rate.
	ErrPairNotFound = errors.New("currency pair not found")

	ErrNegativeMarkup  = errors.New("markup cannot be negative")
	ErrMarkupTooLarge  = errors.New("markup cannot exceed 100%")
	ErrInvalidMarkup   = errors.New("markup must be a finite number")
	ErrMarkupNotFound  = errors.New("markup not found")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// MissingRateError reports which required currency the feed failed to supply.
// It matches both ErrMissingRateData and ErrUpstreamUnavailable.
type MissingRateError struct {
	Currency Currency
	Reason   string
}

func (e *MissingRateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid or missing %s rate: %s", e.Currency, e.Reason)
	}
	return fmt.Sprintf("invalid or missing %s rate", e.Currency)
}

func (e *MissingRateError) Is(target error) bool {
	return target == ErrMissingRateData || target == ErrUpstreamUnavailable
}
