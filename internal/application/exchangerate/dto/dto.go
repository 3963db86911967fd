package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
)

// ExchangeRateResponse is a quoted pair as returned to clients.
type ExchangeRateResponse struct {
	Pair          string  `json:"pair"`
	BaseCurrency  string  `json:"baseCurrency"`
	QuoteCurrency string  `json:"quoteCurrency"`
	BaseRate      float64 `json:"baseRate"`
	BuyMarkup     float64 `json:"buyMarkup"`
	SellMarkup    float64 `json:"sellMarkup"`
	BuyRate       float64 `json:"buyRate"`
	SellRate      float64 `json:"sellRate"`
	Change        float64 `json:"change"`
}

// MarkupResponse is a persisted markup record.
type MarkupResponse struct {
	ID            uint      `json:"id"`
	Pair          string    `json:"pair"`
	BaseCurrency  string    `json:"baseCurrency"`
	QuoteCurrency string    `json:"quoteCurrency"`
	BaseRate      float64   `json:"baseRate"`
	BuyMarkup     float64   `json:"buyMarkup"`
	SellMarkup    float64   `json:"sellMarkup"`
	BuyRate       float64   `json:"buyRate"`
	SellRate      float64   `json:"sellRate"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SetMarkupRequest is the admin markup form. Pointers let 0 pass "required".
type SetMarkupRequest struct {
	BaseCurrency  string   `json:"baseCurrency" binding:"required" validate:"required,currency"`
	QuoteCurrency string   `json:"quoteCurrency" binding:"required" validate:"required,currency"`
	BuyMarkup     *float64 `json:"buyMarkup" validate:"required"`
	SellMarkup    *float64 `json:"sellMarkup" validate:"required"`
}

// ConvertResponse is a calculator result. Amounts are decimal strings.
type ConvertResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Side   string          `json:"side"`
	Amount decimal.Decimal `json:"amount"`
	Result decimal.Decimal `json:"result"`
}

// DashboardMetrics counts back-office records.
type DashboardMetrics struct {
	TotalUsers          int64 `json:"totalUsers"`
	ActiveExchangeRates int64 `json:"activeExchangeRates"`
	Testimonials        int64 `json:"testimonials"`
	FAQs                int64 `json:"faqs"`
}

func ToExchangeRateResponse(r exchangerate.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		Pair:          r.Pair(),
		BaseCurrency:  r.BaseCurrency().String(),
		QuoteCurrency: r.QuoteCurrency().String(),
		BaseRate:      r.BaseRate(),
		BuyMarkup:     r.BuyMarkup(),
		SellMarkup:    r.SellMarkup(),
		BuyRate:       r.BuyRate(),
		SellRate:      r.SellRate(),
		Change:        r.Change(),
	}
}

func ToExchangeRateResponses(rates []exchangerate.ExchangeRate) []ExchangeRateResponse {
	out := make([]ExchangeRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, ToExchangeRateResponse(r))
	}
	return out
}

func ToMarkupResponse(m *exchangerate.Markup) *MarkupResponse {
	if m == nil {
		return nil
	}
	return &MarkupResponse{
		ID:            m.ID(),
		Pair:          m.Pair(),
		BaseCurrency:  m.BaseCurrency().String(),
		QuoteCurrency: m.QuoteCurrency().String(),
		BaseRate:      m.BaseRate(),
		BuyMarkup:     m.BuyMarkup(),
		SellMarkup:    m.SellMarkup(),
		BuyRate:       m.BuyRate(),
		SellRate:      m.SellRate(),
		IsActive:      m.IsActive(),
		CreatedAt:     m.CreatedAt(),
		UpdatedAt:     m.UpdatedAt(),
	}
}

func ToMarkupResponses(markups []*exchangerate.Markup) []*MarkupResponse {
	out := make([]*MarkupResponse, 0, len(markups))
	for _, m := range markups {
		out = append(out, ToMarkupResponse(m))
	}
	return out
}
