package exchangerate

import "math"

const (
	MinMarkup = 0
	MaxMarkup = 100

	// MaxDrift bounds the fractional move simulated on each cached read.
	MaxDrift = 0.0005
)

// ValidateMarkupValue checks that m is a percentage in [0, 100].
func ValidateMarkupValue(m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return ErrInvalidMarkup
	}
	if m < MinMarkup {
		return ErrNegativeMarkup
	}
	if m > MaxMarkup {
		return ErrMarkupTooLarge
	}
	return nil
}
