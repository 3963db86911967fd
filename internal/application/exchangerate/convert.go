package exchangerate

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avestaexchange/avesta/internal/application/exchangerate/dto"
	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

const (
	SideBuy  = "buy"
	SideSell = "sell"
)

var (
	// ErrInvalidSide is returned for a side other than buy or sell.
	ErrInvalidSide = errors.New("side must be buy or sell")
	// ErrAmountOutOfRange is returned when the amount or its converted value
	// does not fit a float64.
	ErrAmountOutOfRange = errors.New("amount is out of range")
)

// ConvertCommand is a calculator request. Side defaults to buy.
type ConvertCommand struct {
	From   string
	To     string
	Amount decimal.Decimal
	Side   string
}

// ConvertUseCase runs the exchange calculator against current rates.
type ConvertUseCase struct {
	rates RateSource
}

func NewConvertUseCase(rates RateSource) *ConvertUseCase {
	return &ConvertUseCase{rates: rates}
}

// Execute converts cmd.Amount. Rial results are rounded to whole rials,
// everything else to two places.
func (uc *ConvertUseCase) Execute(ctx context.Context, cmd ConvertCommand) (*dto.ConvertResponse, error) {
	from, err := exchangerate.ParseCurrency(cmd.From)
	if err != nil {
		return nil, err
	}
	to, err := exchangerate.ParseCurrency(cmd.To)
	if err != nil {
		return nil, err
	}

	side := strings.ToLower(strings.TrimSpace(cmd.Side))
	if side == "" {
		side = SideBuy
	}
	if side != SideBuy && side != SideSell {
		return nil, ErrInvalidSide
	}

	rates, err := uc.rates.FetchLatestRates(ctx)
	if err != nil {
		return nil, err
	}

	amount := cmd.Amount.InexactFloat64()
	if !isFinite(amount) {
		return nil, ErrAmountOutOfRange
	}
	result, err := exchangerate.CalculateExchangeAmount(amount, from, to, rates, side == SideBuy)
	if err != nil {
		return nil, err
	}
	if !isFinite(result) {
		return nil, ErrAmountOutOfRange
	}

	places := int32(2)
	if to == exchangerate.IRR {
		places = 0
	}

	return &dto.ConvertResponse{
		From:   from.String(),
		To:     to.String(),
		Side:   side,
		Amount: cmd.Amount,
		Result: decimal.NewFromFloat(result).Round(places),
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
