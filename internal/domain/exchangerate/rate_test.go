package exchangerate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExchangeRate_DerivesBuyAndSell(t *testing.T) {
	r := NewExchangeRate(USD, IRR, 500000, DefaultBuyMarkup, DefaultSellMarkup, 0.4)

	assert.Equal(t, "USD/IRR", r.Pair())
	assert.InDelta(t, 507500, r.BuyRate(), 1e-6)
	assert.InDelta(t, 505000, r.SellRate(), 1e-6)
	assert.Equal(t, 0.4, r.Change())
}

func TestExchangeRate_WithBaseRateKeepsMarkups(t *testing.T) {
	r := NewExchangeRate(EUR, IRR, 600000, 2, 1, 0)
	moved := r.WithBaseRate(610000, 0.3)

	assert.Equal(t, 2.0, moved.BuyMarkup())
	assert.Equal(t, 1.0, moved.SellMarkup())
	assert.InDelta(t, 610000*1.02, moved.BuyRate(), 1e-6)
	assert.InDelta(t, 610000*1.01, moved.SellRate(), 1e-6)
	// original untouched
	assert.Equal(t, 600000.0, r.BaseRate())
}

func TestValidateMarkupValue(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr error
	}{
		{"zero", 0, nil},
		{"typical", 1.5, nil},
		{"upper bound", 100, nil},
		{"negative", -0.01, ErrNegativeMarkup},
		{"too large", 100.5, ErrMarkupTooLarge},
		{"nan", math.NaN(), ErrInvalidMarkup},
		{"inf", math.Inf(1), ErrInvalidMarkup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMarkupValue(tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCurrencyAndPair(t *testing.T) {
	c, err := ParseCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, USD, c)

	_, err = ParseCurrency("US")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
	_, err = ParseCurrency("U$D")
	assert.ErrorIs(t, err, ErrInvalidCurrency)

	base, quote, err := SplitPair("GBP/IRR")
	require.NoError(t, err)
	assert.Equal(t, GBP, base)
	assert.Equal(t, IRR, quote)

	_, _, err = SplitPair("GBPIRR")
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestMissingRateError_MatchesBothKinds(t *testing.T) {
	var err error = &MissingRateError{Currency: AED, Reason: "price must be positive"}

	assert.True(t, errors.Is(err, ErrMissingRateData))
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.False(t, errors.Is(err, ErrRateNotFound))
	assert.Equal(t, "invalid or missing AED rate: price must be positive", err.Error())
}
